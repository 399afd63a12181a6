package geocode

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"workdesk/internal/infrastructure/geocoding"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
	"workdesk/internal/shared/utils"
)

// Geocoder resolves a free-text location query to coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, query string) (*geocoding.Result, error)
}

type GeocodeHandler struct {
	geocoder Geocoder
	logger   logger.Interface
}

func NewGeocodeHandler(geocoder Geocoder) *GeocodeHandler {
	return &GeocodeHandler{
		geocoder: geocoder,
		logger:   logger.NewLogger(),
	}
}

// Lookup handles GET /geocode
func (h *GeocodeHandler) Lookup(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("query parameter q is required"))
		return
	}

	result, err := h.geocoder.Lookup(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
