// internal/api/handlers/metrics_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warelens/backend-go/internal/service"
)

type MetricsHandler struct {
	service *service.MetricsService
}

func NewMetricsHandler(service *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

// GetDashboard returns the dashboard header summary.
func (h *MetricsHandler) GetDashboard(c *gin.Context) {
	metrics, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
