// internal/forecast/insights.go
package forecast

import (
	"fmt"

	"github.com/warelens/backend-go/internal/domain"
)

// Options tunes the insight rules.
type Options struct {
	// HighDemandThreshold is the weekly demand above which the high-demand
	// advisory fires.
	HighDemandThreshold float64
	// OverstockMultiplier: stock above this multiple of the reorder point
	// triggers the overstock advisory.
	OverstockMultiplier float64
	// EmitHealthyInsight controls whether a neutral message is emitted when
	// no rule fires.
	EmitHealthyInsight bool
}

// DefaultOptions returns the thresholds the dashboard ships with.
func DefaultOptions() Options {
	return Options{
		HighDemandThreshold: 50,
		OverstockMultiplier: 4,
		EmitHealthyInsight:  true,
	}
}

// Insights derives textual recommendations from the classified timeline and
// demand statistics. It is a pure function of its inputs; the rules run in a
// fixed order and each appends independently.
func Insights(item domain.InventoryItem, weeks []domain.WeekStatus, weeklyDemand float64, opts Options) []string {
	var insights []string

	if w, ok := firstFutureOrderWeek(weeks); ok {
		if w.Offset <= 0 {
			insights = append(insights, fmt.Sprintf(
				"%s is already at or below its reorder point (%d units on hand, reorder at %d). Place a replenishment order now.",
				item.Name, item.CurrentStock, item.ReorderPoint))
		} else {
			insights = append(insights, fmt.Sprintf(
				"%s is projected to breach its reorder point in %s. Plan a replenishment order.",
				item.Name, pluralWeeks(w.Offset)))
		}
	}

	if weeklyDemand > opts.HighDemandThreshold {
		insights = append(insights, fmt.Sprintf(
			"%s is seeing high demand at %.1f units/week. Consider raising its reorder point or safety stock.",
			item.Name, weeklyDemand))
	}

	if float64(item.CurrentStock) > opts.OverstockMultiplier*float64(item.ReorderPoint) {
		insights = append(insights, fmt.Sprintf(
			"%s holds %d units, more than %.0fx its reorder point. Consider reducing upcoming orders.",
			item.Name, item.CurrentStock, opts.OverstockMultiplier))
	}

	if len(insights) == 0 && opts.EmitHealthyInsight {
		insights = append(insights, fmt.Sprintf(
			"Stock levels for %s look healthy across the %d-week horizon.",
			item.Name, HorizonWeeks))
	}

	return insights
}

func firstFutureOrderWeek(weeks []domain.WeekStatus) (domain.WeekStatus, bool) {
	for _, w := range weeks {
		if !w.IsHistorical && w.Status == domain.StatusOrder {
			return w, true
		}
	}
	return domain.WeekStatus{}, false
}

func pluralWeeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}
