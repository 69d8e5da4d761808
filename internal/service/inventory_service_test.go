package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelens/backend-go/internal/cache"
	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/repository"
	"github.com/warelens/backend-go/internal/repository/memory"
)

func newInventoryService() *InventoryService {
	return NewInventoryService(memory.NewStore(), cache.NewNoopForecastCache())
}

func TestCreateItem_Validation(t *testing.T) {
	svc := newInventoryService()
	ctx := context.Background()

	cases := []struct {
		name string
		item domain.InventoryItem
	}{
		{"missing name", domain.InventoryItem{SKU: "SKU-1"}},
		{"missing sku", domain.InventoryItem{Name: "Widget"}},
		{"negative stock", domain.InventoryItem{Name: "Widget", SKU: "SKU-1", CurrentStock: -1}},
		{"negative reorder point", domain.InventoryItem{Name: "Widget", SKU: "SKU-1", ReorderPoint: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.CreateItem(ctx, &tc.item)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateItem_StampsLastUpdated(t *testing.T) {
	svc := newInventoryService()
	ctx := context.Background()

	item := domain.InventoryItem{Name: "Widget", SKU: "SKU-1", CurrentStock: 10}
	require.NoError(t, svc.CreateItem(ctx, &item))
	assert.WithinDuration(t, time.Now(), item.LastUpdated, time.Minute)
}

func TestAppendDemand_RejectsUnknownItem(t *testing.T) {
	svc := newInventoryService()
	ctx := context.Background()

	err := svc.AppendDemand(ctx, []domain.DemandRecord{
		{ItemID: 42, Date: time.Now(), Quantity: 3},
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, svc.AppendDemand(ctx, nil), ErrInvalidInput)
}

func TestDemandHistory_RequiresExistingItem(t *testing.T) {
	svc := newInventoryService()

	_, err := svc.DemandHistory(context.Background(), 7)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
