// cmd/ingest/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/warelens/backend-go/internal/cache"
	"github.com/warelens/backend-go/internal/config"
	"github.com/warelens/backend-go/internal/ingest"
	"github.com/warelens/backend-go/internal/repository/postgres"
	"github.com/warelens/backend-go/internal/service"
	"github.com/warelens/backend-go/internal/storage"
	"github.com/warelens/backend-go/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.SetLevel(cfg.Server.Mode)

	driveService, err := ingest.NewService(cfg.Ingest.CredentialsJSON)
	if err != nil {
		log.Fatalf("Failed to initialize Google Drive service: %v", err)
	}

	db, err := postgres.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	forecastCache, err := cache.NewForecastCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("forecast cache unavailable, running without it")
		forecastCache = cache.NewNoopForecastCache()
	}

	inventory := service.NewInventoryService(postgres.NewStore(db), forecastCache)

	var archive storage.ObjectStorage
	if cfg.Ingest.ArchiveEnabled {
		archive, err = storage.NewArchiveClient(storage.ArchiveConfig{
			Endpoint:  cfg.Ingest.ArchiveEndpoint,
			AccessKey: cfg.Ingest.ArchiveAccessKey,
			SecretKey: cfg.Ingest.ArchiveSecretKey,
			Bucket:    cfg.Ingest.ArchiveBucket,
			Region:    cfg.Ingest.ArchiveRegion,
			UseSSL:    true,
		})
		if err != nil {
			log.Fatalf("Failed to initialize archive storage: %v", err)
		}
	}

	ingestService := ingest.NewIngestService(driveService, inventory, archive)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Ingest.DriveFolderID != "" {
		watcher := ingest.NewWatcher(driveService, ingestService, cfg.Ingest.DriveFolderID,
			time.Duration(cfg.Ingest.PollIntervalSeconds)*time.Second)
		go watcher.Run(ctx)
	}

	r := mux.NewRouter()
	handler := ingest.NewHandler(driveService, ingestService)
	handler.RegisterRoutes(r)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Log.Info().Str("addr", addr).Msg("Ingest server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start ingest server")
		}
	}()

	<-ctx.Done()
	logger.Log.Info().Msg("Shutting down ingest server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Ingest server forced to shutdown")
	}

	logger.Log.Info().Msg("Ingest server exiting")
}
