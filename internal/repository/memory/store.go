// internal/repository/memory/store.go
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/repository"
)

// Store is the in-memory repository.Store. It backs the durable store's
// failover path and the test suites; semantics match the Postgres store.
type Store struct {
	mu     sync.RWMutex
	items  map[int64]domain.InventoryItem
	demand map[int64][]domain.DemandRecord
	orders map[int64]domain.Order

	nextItemID   int64
	nextDemandID int64
	nextOrderID  int64
}

func NewStore() *Store {
	return &Store{
		items:        make(map[int64]domain.InventoryItem),
		demand:       make(map[int64][]domain.DemandRecord),
		orders:       make(map[int64]domain.Order),
		nextItemID:   1,
		nextDemandID: 1,
		nextOrderID:  1,
	}
}

var _ repository.Store = (*Store)(nil)

func (s *Store) Items(ctx context.Context) ([]domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (s *Store) ItemByID(ctx context.Context, id int64) (domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return domain.InventoryItem{}, repository.ErrNotFound
	}

	return item, nil
}

func (s *Store) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextItemID
	s.nextItemID++
	item.LastUpdated = time.Now()
	s.items[item.ID] = *item

	return nil
}

func (s *Store) UpdateStock(ctx context.Context, id int64, currentStock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	item.CurrentStock = currentStock
	item.LastUpdated = time.Now()
	s.items[id] = item

	return nil
}

func (s *Store) DemandHistory(ctx context.Context, itemID int64) ([]domain.DemandRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := append([]domain.DemandRecord(nil), s.demand[itemID]...)
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })

	return records, nil
}

func (s *Store) AppendDemand(ctx context.Context, records []domain.DemandRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		rec.ID = s.nextDemandID
		s.nextDemandID++
		s.demand[rec.ItemID] = append(s.demand[rec.ItemID], rec)
	}

	return nil
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })

	return orders, nil
}

func (s *Store) OrderByID(ctx context.Context, id int64) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, repository.ErrNotFound
	}

	return order, nil
}

func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextOrderID
	s.nextOrderID++
	s.orders[order.ID] = *order

	return nil
}

func (s *Store) UpdateOrder(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		return repository.ErrNotFound
	}
	s.orders[order.ID] = *order

	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.orders, id)

	return nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}
