package forecast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelens/backend-go/internal/domain"
)

func classifiedWeeks(stocks []int, reorderPoint int) []domain.WeekStatus {
	weeks := weeksFromStocks(stocks)
	Classify(weeks, reorderPoint)
	return weeks
}

func TestInsights_StockoutCountdown(t *testing.T) {
	item := domain.InventoryItem{Name: "HDMI Cable", CurrentStock: 90, ReorderPoint: 60}
	// First future breach at offset 3.
	weeks := classifiedWeeks([]int{150, 140, 130, 120, 90, 80, 70, 55, 40, 30, 20, 10}, 60)

	got := Insights(item, weeks, 10, DefaultOptions())

	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "3 weeks")
	assert.Contains(t, got[0], "HDMI Cable")
}

func TestInsights_OrderNowWhenCurrentWeekBreaches(t *testing.T) {
	item := domain.InventoryItem{Name: "USB-C Cable", CurrentStock: 45, ReorderPoint: 60}
	weeks := classifiedWeeks([]int{93, 81, 69, 57, 33, 21, 9, 0, 0, 0, 0, 0}, 60)

	got := Insights(item, weeks, 12, DefaultOptions())

	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "order now")
}

func TestInsights_HistoricalBreachDoesNotTriggerCountdown(t *testing.T) {
	// Only a historical week breaches; future weeks are all fine.
	item := domain.InventoryItem{Name: "Label Roll", CurrentStock: 200, ReorderPoint: 50}
	weeks := classifiedWeeks([]int{40, 210, 220, 230, 200, 200, 200, 200, 200, 200, 200, 200}, 50)

	got := Insights(item, weeks, 5, DefaultOptions())

	for _, s := range got {
		assert.NotContains(t, s, "replenishment")
	}
}

func TestInsights_HighDemandAdvisory(t *testing.T) {
	item := domain.InventoryItem{Name: "AA Battery", CurrentStock: 900, ReorderPoint: 300}
	weeks := classifiedWeeks([]int{1200, 1100, 1000, 950, 850, 800, 750, 700, 650, 600, 550, 500}, 300)

	got := Insights(item, weeks, 75, DefaultOptions())

	require.NotEmpty(t, got)
	assert.Contains(t, strings.Join(got, "\n"), "high demand")
}

func TestInsights_OverstockAdvisory(t *testing.T) {
	item := domain.InventoryItem{Name: "Bluetooth Speaker", CurrentStock: 234, ReorderPoint: 50}
	weeks := classifiedWeeks([]int{250, 246, 242, 238, 231, 228, 225, 222, 219, 216, 213, 210}, 50)

	got := Insights(item, weeks, 3, DefaultOptions())

	require.NotEmpty(t, got)
	assert.Contains(t, strings.Join(got, "\n"), "reducing upcoming orders")
}

func TestInsights_HealthyFallback(t *testing.T) {
	item := domain.InventoryItem{Name: "Notebook", CurrentStock: 120, ReorderPoint: 60}
	weeks := classifiedWeeks([]int{180, 170, 160, 150, 110, 105, 100, 95, 90, 85, 80, 75}, 60)

	opts := DefaultOptions()
	got := Insights(item, weeks, 10, opts)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "healthy")

	opts.EmitHealthyInsight = false
	assert.Empty(t, Insights(item, weeks, 10, opts))
}

func TestInsights_RulesAppendIndependently(t *testing.T) {
	// Breaching future week + high demand + overstock all at once.
	item := domain.InventoryItem{Name: "Power Strip", CurrentStock: 500, ReorderPoint: 100}
	weeks := classifiedWeeks([]int{900, 800, 700, 600, 400, 300, 200, 90, 50, 20, 0, 0}, 100)

	got := Insights(item, weeks, 120, DefaultOptions())

	assert.Len(t, got, 3)
}
