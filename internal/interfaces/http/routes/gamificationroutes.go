package routes

import (
	"github.com/gin-gonic/gin"

	gamificationhandlers "workdesk/internal/interfaces/http/handlers/gamification"
)

type GamificationRouteConfig struct {
	ProfileHandler *gamificationhandlers.ProfileHandler
}

func SetupGamificationRoutes(engine *gin.Engine, config *GamificationRouteConfig) {
	engine.GET("/profiles/:id", config.ProfileHandler.GetProfile)
	engine.GET("/leaderboard", config.ProfileHandler.Leaderboard)
}
