package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelens/backend-go/internal/cache"
	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/repository/memory"
	"github.com/warelens/backend-go/internal/service"
)

func newIngestFixture(t *testing.T) (*IngestService, *service.InventoryService, int64) {
	t.Helper()
	store := memory.NewStore()
	inventory := service.NewInventoryService(store, cache.NewNoopForecastCache())

	item := domain.InventoryItem{Name: "USB-C Cable", SKU: "CBL-USBC-2M", CurrentStock: 45, ReorderPoint: 60}
	require.NoError(t, inventory.CreateItem(context.Background(), &item))

	return NewIngestService(nil, inventory, nil), inventory, item.ID
}

func TestParseDemandCSV(t *testing.T) {
	svc, _, itemID := newIngestFixture(t)

	csv := strings.Join([]string{
		"sku,date,quantity",
		"CBL-USBC-2M,2025-05-26,12",
		"CBL-USBC-2M,2025-05-27,9",
	}, "\n")

	records, err := svc.parseDemandCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, itemID, records[0].ItemID)
	assert.Equal(t, 12, records[0].Quantity)
	assert.Equal(t, time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC), records[0].Date)
}

func TestParseDemandCSV_HeaderIsCaseInsensitive(t *testing.T) {
	svc, _, _ := newIngestFixture(t)

	csv := "SKU,Date,Quantity\nCBL-USBC-2M,2025-05-26,3\n"
	records, err := svc.parseDemandCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParseDemandCSV_RejectsBadInput(t *testing.T) {
	svc, _, _ := newIngestFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		csv  string
		want string
	}{
		{"missing column", "sku,quantity\nCBL-USBC-2M,3\n", "missing required column"},
		{"unknown sku", "sku,date,quantity\nNOPE-1,2025-05-26,3\n", "unknown sku"},
		{"bad date", "sku,date,quantity\nCBL-USBC-2M,26/05/2025,3\n", "invalid date"},
		{"bad quantity", "sku,date,quantity\nCBL-USBC-2M,2025-05-26,lots\n", "invalid quantity"},
		{"negative quantity", "sku,date,quantity\nCBL-USBC-2M,2025-05-26,-2\n", "must not be negative"},
		{"empty file", "sku,date,quantity\n", "no demand rows"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.parseDemandCSV(ctx, strings.NewReader(tc.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestIsDemandFeedFile(t *testing.T) {
	cases := []struct {
		name     string
		mimeType string
		want     bool
	}{
		{"demand_2025-05-26.csv", "text/csv", true},
		{"DEMAND.CSV", "application/octet-stream", true},
		{"export", "text/csv", true},
		{"demand.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", false},
		{"notes.txt", "text/plain", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isDemandFeedFile(tc.name, tc.mimeType), tc.name)
	}
}

func TestParseDemandCSV_AppendsThroughInventory(t *testing.T) {
	svc, inventory, itemID := newIngestFixture(t)
	ctx := context.Background()

	csv := "sku,date,quantity\nCBL-USBC-2M,2025-05-26,12\n"
	records, err := svc.parseDemandCSV(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	require.NoError(t, inventory.AppendDemand(ctx, records))

	history, err := inventory.DemandHistory(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 12, history[0].Quantity)
}
