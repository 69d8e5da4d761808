// internal/forecast/projector.go
package forecast

import (
	"math"
	"time"

	"github.com/warelens/backend-go/internal/domain"
)

// HistoricalWeeks is the number of synthetic weeks reconstructed before now.
const HistoricalWeeks = 4

// Project walks current stock across the combined timeline: 4 reconstructed
// historical weeks followed by the forecast horizon. True historical stock is
// not tracked, so prior weeks add back assumed consumption (weeklyDemand per
// week), which yields a series that decreases toward the present and ends
// near currentStock.
//
// For future weeks the forecasted demand is subtracted before the week is
// recorded: week 0 already reflects that week's consumption, not the opening
// balance. Projected stock is always floored and clamped to >= 0.
func Project(currentStock int, weeklyDemand float64, fc []int, now time.Time) []domain.WeekStatus {
	weeks := make([]domain.WeekStatus, 0, HistoricalWeeks+len(fc))
	anchor := dateOnly(now)

	for k := HistoricalWeeks; k >= 1; k-- {
		stock := math.Floor(float64(currentStock) + weeklyDemand*float64(k))
		if stock < 0 {
			stock = 0
		}
		weeks = append(weeks, weekEntry(anchor, -k, int(stock), 0, true))
	}

	acc := currentStock
	for i, demand := range fc {
		acc -= demand
		if acc < 0 {
			acc = 0
		}
		weeks = append(weeks, weekEntry(anchor, i, acc, demand, false))
	}

	// Renumber for display: historical weeks 1..4, future 5..12. Relative
	// order and the historical/future boundary are preserved in Offset.
	for i := range weeks {
		weeks[i].Week = i + 1
	}

	return weeks
}

func weekEntry(anchor time.Time, offset, stock, demand int, historical bool) domain.WeekStatus {
	start := anchor.AddDate(0, 0, 7*offset)
	return domain.WeekStatus{
		Offset:           offset,
		WeekStart:        start,
		WeekEnd:          start.AddDate(0, 0, 6),
		ProjectedStock:   stock,
		ForecastedDemand: demand,
		IsHistorical:     historical,
	}
}
