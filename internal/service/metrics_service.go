// internal/service/metrics_service.go
package service

import (
	"context"

	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/repository"
)

// MetricsService derives the dashboard header numbers from the current
// forecast set and the order book.
type MetricsService struct {
	forecasts *ForecastService
	store     repository.Store
}

func NewMetricsService(forecasts *ForecastService, store repository.Store) *MetricsService {
	return &MetricsService{forecasts: forecasts, store: store}
}

// Dashboard classifies every item by its current-week status: "order" counts
// as urgent, and both "order" and "low" count as low stock.
func (s *MetricsService) Dashboard(ctx context.Context) (domain.DashboardMetrics, error) {
	forecasts, err := s.forecasts.ForecastAll(ctx)
	if err != nil {
		return domain.DashboardMetrics{}, err
	}

	metrics := domain.DashboardMetrics{TotalItems: len(forecasts)}
	for _, fc := range forecasts {
		switch currentWeekStatus(fc.StockStatus) {
		case domain.StatusOrder:
			metrics.UrgentItems++
			metrics.LowStockItems++
		case domain.StatusLow:
			metrics.LowStockItems++
		}
	}

	orders, err := s.store.Orders(ctx)
	if err != nil {
		return domain.DashboardMetrics{}, err
	}
	for _, o := range orders {
		if o.Status == domain.OrderStatusPending {
			metrics.PendingOrders++
		}
	}

	return metrics, nil
}

func currentWeekStatus(weeks []domain.WeekStatus) string {
	for _, w := range weeks {
		if w.Offset == 0 {
			return w.Status
		}
	}
	return domain.StatusEnough
}
