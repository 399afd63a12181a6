package gamification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workdesk/internal/application/gamification/usecases"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
	"workdesk/internal/shared/utils"
)

const defaultLeaderboardLimit = 10

type ProfileHandler struct {
	getProfileUC  usecases.GetProfileExecutor
	leaderboardUC usecases.LeaderboardExecutor
	logger        logger.Interface
}

func NewProfileHandler(
	getProfileUC usecases.GetProfileExecutor,
	leaderboardUC usecases.LeaderboardExecutor,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:  getProfileUC,
		leaderboardUC: leaderboardUC,
		logger:        logger.NewLogger(),
	}
}

// GetProfile handles GET /profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user ID"))
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: uint(id)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Leaderboard handles GET /leaderboard
func (h *ProfileHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLeaderboardLimit)))
	if limit < 1 || limit > 100 {
		limit = defaultLeaderboardLimit
	}

	result, err := h.leaderboardUC.Execute(c.Request.Context(), usecases.LeaderboardQuery{Limit: limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
