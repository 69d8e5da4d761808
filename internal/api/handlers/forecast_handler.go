// internal/api/handlers/forecast_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warelens/backend-go/internal/service"
)

type ForecastHandler struct {
	service *service.ForecastService
}

func NewForecastHandler(service *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{service: service}
}

// GetAll returns the forecast for every item in the catalog.
func (h *ForecastHandler) GetAll(c *gin.Context) {
	forecasts, err := h.service.ForecastAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"forecasts": forecasts,
		"total":     len(forecasts),
	})
}

// GetItem returns the forecast for a single item.
func (h *ForecastHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	forecast, err := h.service.ForecastItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}
