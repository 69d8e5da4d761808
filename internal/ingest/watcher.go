// internal/ingest/watcher.go
package ingest

import (
	"context"
	"time"

	"github.com/warelens/backend-go/pkg/logger"
)

// Watcher polls the demand-feed folder and ingests files it has not seen
// yet. Seen-file state is in memory only; a restart re-reads the folder, and
// duplicate protection comes from archiving processed files out of band.
type Watcher struct {
	driveService *Service
	ingest       *IngestService
	folderID     string
	interval     time.Duration
	seen         map[string]string
}

func NewWatcher(driveService *Service, ingest *IngestService, folderID string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Watcher{
		driveService: driveService,
		ingest:       ingest,
		folderID:     folderID,
		interval:     interval,
		seen:         make(map[string]string),
	}
}

// Run polls until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	logger.Log.Info().
		Str("folder_id", w.folderID).
		Dur("interval", w.interval).
		Msg("starting demand feed watcher")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info().Msg("demand feed watcher stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	files, err := w.driveService.ListFiles(ctx, w.folderID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("listing demand feed folder failed")
		return
	}

	for _, f := range files {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if modified, ok := w.seen[f.ID]; ok && modified == f.ModifiedTime {
			continue
		}

		count, err := w.ingest.IngestFile(ctx, f.ID, f.Name)
		if err != nil {
			logger.Log.Error().Err(err).Str("file", f.Name).Msg("demand file ingestion failed")
			continue
		}

		w.seen[f.ID] = f.ModifiedTime
		logger.Log.Info().
			Str("file", f.Name).
			Int("records", count).
			Msg("demand file ingested")
	}
}
