// internal/repository/failover/store.go
package failover

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/repository"
)

// Store decorates a durable repository.Store with an in-memory fallback:
// reads that fail against the primary are retried against the fallback with
// identical semantics. Writes go to the primary only; serving stale reads
// during an outage is acceptable, silently dropping writes is not.
//
// ErrNotFound is a definitive answer from the primary, not an outage, and is
// never failed over.
type Store struct {
	primary  repository.Store
	fallback repository.Store
}

func New(primary, fallback repository.Store) *Store {
	return &Store{primary: primary, fallback: fallback}
}

var _ repository.Store = (*Store)(nil)

func (s *Store) failover(op string, err error) bool {
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		return false
	}
	log.Warn().Err(err).Str("op", op).Msg("durable store failed, serving from in-memory fallback")
	return true
}

func (s *Store) Items(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.primary.Items(ctx)
	if s.failover("items", err) {
		return s.fallback.Items(ctx)
	}
	return items, err
}

func (s *Store) ItemByID(ctx context.Context, id int64) (domain.InventoryItem, error) {
	item, err := s.primary.ItemByID(ctx, id)
	if s.failover("item_by_id", err) {
		return s.fallback.ItemByID(ctx, id)
	}
	return item, err
}

func (s *Store) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	return s.primary.CreateItem(ctx, item)
}

func (s *Store) UpdateStock(ctx context.Context, id int64, currentStock int) error {
	return s.primary.UpdateStock(ctx, id, currentStock)
}

func (s *Store) DemandHistory(ctx context.Context, itemID int64) ([]domain.DemandRecord, error) {
	records, err := s.primary.DemandHistory(ctx, itemID)
	if s.failover("demand_history", err) {
		return s.fallback.DemandHistory(ctx, itemID)
	}
	return records, err
}

func (s *Store) AppendDemand(ctx context.Context, records []domain.DemandRecord) error {
	return s.primary.AppendDemand(ctx, records)
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.primary.Orders(ctx)
	if s.failover("orders", err) {
		return s.fallback.Orders(ctx)
	}
	return orders, err
}

func (s *Store) OrderByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := s.primary.OrderByID(ctx, id)
	if s.failover("order_by_id", err) {
		return s.fallback.OrderByID(ctx, id)
	}
	return order, err
}

func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) error {
	return s.primary.CreateOrder(ctx, order)
}

func (s *Store) UpdateOrder(ctx context.Context, order *domain.Order) error {
	return s.primary.UpdateOrder(ctx, order)
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	return s.primary.DeleteOrder(ctx, id)
}

func (s *Store) HealthCheck(ctx context.Context) error {
	return s.primary.HealthCheck(ctx)
}

func (s *Store) Close() error {
	return s.primary.Close()
}
