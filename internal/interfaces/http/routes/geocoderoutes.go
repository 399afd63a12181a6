package routes

import (
	"github.com/gin-gonic/gin"

	geocodehandlers "workdesk/internal/interfaces/http/handlers/geocode"
)

type GeocodeRouteConfig struct {
	GeocodeHandler *geocodehandlers.GeocodeHandler
}

func SetupGeocodeRoutes(engine *gin.Engine, config *GeocodeRouteConfig) {
	engine.GET("/geocode", config.GeocodeHandler.Lookup)
}
