// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warelens/backend-go/internal/api"
	"github.com/warelens/backend-go/internal/cache"
	"github.com/warelens/backend-go/internal/config"
	"github.com/warelens/backend-go/internal/forecast"
	"github.com/warelens/backend-go/internal/repository"
	"github.com/warelens/backend-go/internal/repository/failover"
	"github.com/warelens/backend-go/internal/repository/memory"
	"github.com/warelens/backend-go/internal/repository/postgres"
	"github.com/warelens/backend-go/internal/service"
	"github.com/warelens/backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store := buildStore(cfg)
	defer store.Close()

	forecastCache, err := cache.NewForecastCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("forecast cache unavailable, running without it")
		forecastCache = cache.NewNoopForecastCache()
	}

	engine := forecast.NewEngine(forecast.Options{
		HighDemandThreshold: cfg.Forecast.HighDemandThreshold,
		OverstockMultiplier: cfg.Forecast.OverstockMultiplier,
		EmitHealthyInsight:  cfg.Forecast.EmitHealthyInsight,
	})

	forecastService := service.NewForecastService(store, engine, forecastCache)
	services := &api.Services{
		Forecast:  forecastService,
		Inventory: service.NewInventoryService(store, forecastCache),
		Orders:    service.NewOrderService(store, forecastCache),
		Metrics:   service.NewMetricsService(forecastService, store),
		Store:     store,
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

// buildStore connects to Postgres and wraps it with the in-memory demo
// fallback so the dashboard keeps serving during an outage. When the
// database is unreachable at startup the demo store serves alone.
func buildStore(cfg *config.Config) repository.Store {
	db, err := postgres.Open(&cfg.Database)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("database unavailable, serving demo data from memory")
		return memory.NewDemoStore(time.Now())
	}

	return failover.New(postgres.NewStore(db), memory.NewDemoStore(time.Now()))
}
