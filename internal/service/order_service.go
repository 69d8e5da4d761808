// internal/service/order_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/warelens/backend-go/internal/cache"
	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/repository"
	"github.com/warelens/backend-go/pkg/logger"
)

// OrderService manages purchase orders. Cost and expected delivery are
// derived from the item at creation time and frozen on the order. Deliveries
// change stock, so they invalidate cached forecasts like any other stock
// write.
type OrderService struct {
	store repository.Store
	cache cache.ForecastCache
	now   func() time.Time
}

func NewOrderService(store repository.Store, fc cache.ForecastCache) *OrderService {
	return &OrderService{store: store, cache: fc, now: time.Now}
}

func (s *OrderService) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.store.Orders(ctx)
}

func (s *OrderService) OrderByID(ctx context.Context, id int64) (domain.Order, error) {
	return s.store.OrderByID(ctx, id)
}

// CreateOrder places a pending order for quantity units of the item. The
// order cost is quantity times the item's unit cost, and the expected
// delivery date is the order date plus the item's lead time.
func (s *OrderService) CreateOrder(ctx context.Context, itemID int64, quantity int) (domain.Order, error) {
	if quantity <= 0 {
		return domain.Order{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	item, err := s.store.ItemByID(ctx, itemID)
	if err != nil {
		return domain.Order{}, err
	}

	orderDate := s.now()
	expected := orderDate.AddDate(0, 0, item.LeadTimeDays)

	order := domain.Order{
		ItemID:               item.ID,
		Quantity:             quantity,
		Status:               domain.OrderStatusPending,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: &expected,
		Cost:                 float64(quantity) * item.UnitCost,
	}

	if err := s.store.CreateOrder(ctx, &order); err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Marking an order
// delivered adds its quantity to the item's stock.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return domain.Order{}, fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, status)
	}

	order, err := s.store.OrderByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	if order.Status == domain.OrderStatusDelivered || order.Status == domain.OrderStatusCancelled {
		return domain.Order{}, fmt.Errorf("%w: order %d is already %s", ErrInvalidInput, id, order.Status)
	}

	previous := order.Status
	order.Status = status
	if err := s.store.UpdateOrder(ctx, &order); err != nil {
		return domain.Order{}, err
	}

	if status == domain.OrderStatusDelivered && previous != domain.OrderStatusDelivered {
		item, err := s.store.ItemByID(ctx, order.ItemID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("load item for delivered order %d: %w", id, err)
		}
		if err := s.store.UpdateStock(ctx, item.ID, item.CurrentStock+order.Quantity); err != nil {
			return domain.Order{}, fmt.Errorf("apply delivered order %d to stock: %w", id, err)
		}
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Warn().Err(err).Msg("forecast cache invalidation failed")
		}
	}

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.store.DeleteOrder(ctx, id)
}
