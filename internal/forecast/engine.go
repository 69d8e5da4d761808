// internal/forecast/engine.go
package forecast

import (
	"time"

	"github.com/warelens/backend-go/internal/domain"
)

// Engine composes the forecasting steps for a single item: demand
// aggregation, forecast generation, stock projection, status classification
// and insight generation. Evaluate is pure and synchronous; all I/O (loading
// the item and its history) belongs to the caller, and items are independent,
// so callers may evaluate the whole inventory set in parallel.
type Engine struct {
	opts Options
}

// NewEngine returns an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Evaluate computes the full forecast result for one item. history may be
// empty (a new item forecasts all zeros and projects flat stock); item must
// be valid, which the storage layer guarantees before this is called.
func (e *Engine) Evaluate(item domain.InventoryItem, history []domain.DemandRecord, now time.Time) domain.ItemForecast {
	weeklyDemand, demandVariability := WeeklyDemandStats(history, now)

	fc := Generate(item.ID, weeklyDemand, demandVariability)

	weeks := Project(item.CurrentStock, weeklyDemand, fc, now)
	Classify(weeks, item.ReorderPoint)

	return domain.ItemForecast{
		Item:              item,
		WeeklyDemand:      weeklyDemand,
		DemandVariability: demandVariability,
		Forecast:          fc,
		StockStatus:       weeks,
		Insights:          Insights(item, weeks, weeklyDemand, e.opts),
	}
}
