// internal/repository/store.go
package repository

import (
	"context"
	"errors"

	"github.com/warelens/backend-go/internal/domain"
)

var (
	// ErrNotFound is returned when an item or order does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the storage collaborator of the forecasting core. Reads are safe
// for concurrent use; the core itself never touches the store, callers fetch
// first and hand the data over.
type Store interface {
	Items(ctx context.Context) ([]domain.InventoryItem, error)
	ItemByID(ctx context.Context, id int64) (domain.InventoryItem, error)
	CreateItem(ctx context.Context, item *domain.InventoryItem) error
	UpdateStock(ctx context.Context, id int64, currentStock int) error

	DemandHistory(ctx context.Context, itemID int64) ([]domain.DemandRecord, error)
	AppendDemand(ctx context.Context, records []domain.DemandRecord) error

	Orders(ctx context.Context) ([]domain.Order, error)
	OrderByID(ctx context.Context, id int64) (domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	UpdateOrder(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, id int64) error

	HealthCheck(ctx context.Context) error
	Close() error
}
