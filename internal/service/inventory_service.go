// internal/service/inventory_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/warelens/backend-go/internal/cache"
	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/repository"
	"github.com/warelens/backend-go/pkg/logger"
)

// ErrInvalidInput marks request payloads the service rejects before touching
// storage. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid input")

// InventoryService manages the item catalog and stock levels. Stock changes
// invalidate cached forecasts so the dashboard never serves projections
// computed from superseded stock.
type InventoryService struct {
	store repository.Store
	cache cache.ForecastCache
}

func NewInventoryService(store repository.Store, fc cache.ForecastCache) *InventoryService {
	return &InventoryService{store: store, cache: fc}
}

func (s *InventoryService) Items(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.store.Items(ctx)
}

func (s *InventoryService) ItemByID(ctx context.Context, id int64) (domain.InventoryItem, error) {
	return s.store.ItemByID(ctx, id)
}

func (s *InventoryService) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if item.SKU == "" {
		return fmt.Errorf("%w: sku is required", ErrInvalidInput)
	}
	if item.CurrentStock < 0 {
		return fmt.Errorf("%w: current_stock must not be negative", ErrInvalidInput)
	}
	if item.ReorderPoint < 0 {
		return fmt.Errorf("%w: reorder_point must not be negative", ErrInvalidInput)
	}

	item.LastUpdated = time.Now()
	if err := s.store.CreateItem(ctx, item); err != nil {
		return err
	}

	s.invalidateForecasts(ctx)
	return nil
}

func (s *InventoryService) UpdateStock(ctx context.Context, id int64, currentStock int) error {
	if currentStock < 0 {
		return fmt.Errorf("%w: current_stock must not be negative", ErrInvalidInput)
	}

	if err := s.store.UpdateStock(ctx, id, currentStock); err != nil {
		return err
	}

	s.invalidateForecasts(ctx)
	return nil
}

func (s *InventoryService) DemandHistory(ctx context.Context, itemID int64) ([]domain.DemandRecord, error) {
	if _, err := s.store.ItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.store.DemandHistory(ctx, itemID)
}

// AppendDemand records observed demand. Records for unknown items are
// rejected before anything is written.
func (s *InventoryService) AppendDemand(ctx context.Context, records []domain.DemandRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: no demand records given", ErrInvalidInput)
	}
	for _, r := range records {
		if r.Quantity < 0 {
			return fmt.Errorf("%w: demand quantity must not be negative", ErrInvalidInput)
		}
		if _, err := s.store.ItemByID(ctx, r.ItemID); err != nil {
			return fmt.Errorf("item %d: %w", r.ItemID, err)
		}
	}

	if err := s.store.AppendDemand(ctx, records); err != nil {
		return err
	}

	s.invalidateForecasts(ctx)
	return nil
}

func (s *InventoryService) invalidateForecasts(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("forecast cache invalidation failed")
	}
}
