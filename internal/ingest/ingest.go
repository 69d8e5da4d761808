// internal/ingest/ingest.go
package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/service"
	"github.com/warelens/backend-go/internal/storage"
	"github.com/warelens/backend-go/pkg/logger"
)

// demand CSV layout: sku,date,quantity with dates as YYYY-MM-DD.
var requiredColumns = []string{"sku", "date", "quantity"}

// IngestService pulls demand CSVs from Drive, appends the records to the
// inventory history, and archives the raw file when an archive bucket is
// configured.
type IngestService struct {
	driveService *Service
	inventory    *service.InventoryService
	archive      storage.ObjectStorage
}

func NewIngestService(driveService *Service, inventory *service.InventoryService, archive storage.ObjectStorage) *IngestService {
	return &IngestService{
		driveService: driveService,
		inventory:    inventory,
		archive:      archive,
	}
}

// IngestFile downloads one Drive file, parses it as a demand CSV and appends
// its records. The whole file is validated before anything is written; a bad
// row rejects the file.
func (s *IngestService) IngestFile(ctx context.Context, fileID, fileName string) (int, error) {
	var buf bytes.Buffer
	if err := s.driveService.DownloadFile(ctx, fileID, &buf); err != nil {
		return 0, err
	}

	raw := buf.Bytes()
	records, err := s.parseDemandCSV(ctx, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", fileName, err)
	}

	if err := s.inventory.AppendDemand(ctx, records); err != nil {
		return 0, fmt.Errorf("append demand from %s: %w", fileName, err)
	}

	if s.archive != nil {
		key := fmt.Sprintf("demand/%s/%s", time.Now().UTC().Format("2006-01-02"), fileName)
		if err := s.archive.UploadObject(ctx, key, raw); err != nil {
			logger.Log.Warn().Err(err).Str("file", fileName).Msg("archiving ingested file failed")
		}
	}

	return len(records), nil
}

func (s *IngestService) parseDemandCSV(ctx context.Context, r io.Reader) ([]domain.DemandRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colMap := make(map[string]int)
	for i, col := range header {
		colMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colMap[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	itemsBySKU, err := s.itemsBySKU(ctx)
	if err != nil {
		return nil, err
	}

	var records []domain.DemandRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		sku := strings.TrimSpace(row[colMap["sku"]])
		item, ok := itemsBySKU[sku]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown sku %q", line, sku)
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(row[colMap["date"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date: %w", line, err)
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(row[colMap["quantity"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid quantity: %w", line, err)
		}
		if quantity < 0 {
			return nil, fmt.Errorf("line %d: quantity must not be negative", line)
		}

		records = append(records, domain.DemandRecord{
			ItemID:   item.ID,
			Date:     date,
			Quantity: quantity,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no demand rows found")
	}

	return records, nil
}

func (s *IngestService) itemsBySKU(ctx context.Context) (map[string]domain.InventoryItem, error) {
	items, err := s.inventory.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	bySKU := make(map[string]domain.InventoryItem, len(items))
	for _, item := range items {
		bySKU[item.SKU] = item
	}
	return bySKU, nil
}
