// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/warelens/backend-go/internal/api/handlers"
	"github.com/warelens/backend-go/internal/api/middleware"
	"github.com/warelens/backend-go/internal/repository"
	"github.com/warelens/backend-go/internal/service"
)

type Services struct {
	Forecast  *service.ForecastService
	Inventory *service.InventoryService
	Orders    *service.OrderService
	Metrics   *service.MetricsService
	Store     repository.Store
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		if services != nil && services.Store != nil {
			if err := services.Store.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "details": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Inventory != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.Inventory)
			inventoryGroup := apiGroup.Group("/inventory")
			{
				inventoryGroup.GET("", inventoryHandler.List)
				inventoryGroup.POST("", inventoryHandler.Create)
				inventoryGroup.GET("/:id", inventoryHandler.Get)
				inventoryGroup.PUT("/:id/stock", inventoryHandler.UpdateStock)
				inventoryGroup.GET("/:id/history", inventoryHandler.History)
				inventoryGroup.POST("/:id/demand", inventoryHandler.AppendDemand)
			}
		}

		if services.Forecast != nil {
			forecastHandler := handlers.NewForecastHandler(services.Forecast)
			forecastGroup := apiGroup.Group("/forecast")
			{
				forecastGroup.GET("", forecastHandler.GetAll)
				forecastGroup.GET("/:id", forecastHandler.GetItem)
			}
		}

		if services.Orders != nil {
			orderHandler := handlers.NewOrderHandler(services.Orders)
			orderGroup := apiGroup.Group("/orders")
			{
				orderGroup.GET("", orderHandler.List)
				orderGroup.POST("", orderHandler.Create)
				orderGroup.GET("/:id", orderHandler.Get)
				orderGroup.PUT("/:id/status", orderHandler.UpdateStatus)
				orderGroup.DELETE("/:id", orderHandler.Delete)
			}
		}

		if services.Metrics != nil {
			metricsHandler := handlers.NewMetricsHandler(services.Metrics)
			apiGroup.GET("/dashboard/metrics", metricsHandler.GetDashboard)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
