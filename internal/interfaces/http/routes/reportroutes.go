package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "workdesk/internal/interfaces/http/handlers/report"
)

type ReportRouteConfig struct {
	ReportHandler *reporthandlers.ReportHandler
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports")
	{
		reports.GET("/kpi", config.ReportHandler.KPIReport)
	}
}
