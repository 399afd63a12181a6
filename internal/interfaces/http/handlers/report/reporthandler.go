package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"workdesk/internal/application/report/usecases"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
	"workdesk/internal/shared/utils"
)

const (
	defaultReportDays    = 30
	defaultTopPerformers = 5
)

type ReportHandler struct {
	kpiReportUC usecases.KPIReportExecutor
	logger      logger.Interface
}

func NewReportHandler(kpiReportUC usecases.KPIReportExecutor) *ReportHandler {
	return &ReportHandler{
		kpiReportUC: kpiReportUC,
		logger:      logger.NewLogger(),
	}
}

// KPIReport handles GET /reports/kpi
func (h *ReportHandler) KPIReport(c *gin.Context) {
	query, err := parseKPIReportQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.kpiReportUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseKPIReportQuery(c *gin.Context) (usecases.KPIReportQuery, error) {
	var query usecases.KPIReportQuery

	now := time.Now()
	query.From = now.AddDate(0, 0, -defaultReportDays)
	query.To = now

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return query, errors.NewValidationError("invalid from, expected RFC3339")
		}
		query.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return query, errors.NewValidationError("invalid to, expected RFC3339")
		}
		query.To = to
	}
	if query.To.Before(query.From) {
		return query, errors.NewValidationError("to must not precede from")
	}

	top, _ := strconv.Atoi(c.DefaultQuery("top", strconv.Itoa(defaultTopPerformers)))
	if top < 1 || top > 50 {
		top = defaultTopPerformers
	}
	query.TopPerformers = top

	return query, nil
}
