// internal/forecast/classifier.go
package forecast

import "github.com/warelens/backend-go/internal/domain"

// Classify annotates every projected week with a tri-state status in place.
//
// Every week whose projected stock breaches the reorder point is "order",
// including historical ones. The single week immediately before the first
// breach is "low", the one-week-ahead warning. Everything else is "enough".
// At most one week per item can therefore be "low", and if no week breaches,
// none is.
func Classify(weeks []domain.WeekStatus, reorderPoint int) {
	firstOrder := -1
	for i := range weeks {
		if breaches(weeks[i].ProjectedStock, reorderPoint) {
			firstOrder = i
			break
		}
	}

	for i := range weeks {
		switch {
		case breaches(weeks[i].ProjectedStock, reorderPoint):
			weeks[i].Status = domain.StatusOrder
		case firstOrder != -1 && i == firstOrder-1:
			weeks[i].Status = domain.StatusLow
		default:
			weeks[i].Status = domain.StatusEnough
		}
	}
}

func breaches(projectedStock, reorderPoint int) bool {
	return projectedStock <= 0 || projectedStock <= reorderPoint
}
