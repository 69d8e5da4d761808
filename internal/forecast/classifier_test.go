package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelens/backend-go/internal/domain"
)

func weeksFromStocks(stocks []int) []domain.WeekStatus {
	weeks := make([]domain.WeekStatus, len(stocks))
	for i, s := range stocks {
		weeks[i] = domain.WeekStatus{Week: i + 1, Offset: i - HistoricalWeeks, ProjectedStock: s, IsHistorical: i < HistoricalWeeks}
	}
	return weeks
}

func statuses(weeks []domain.WeekStatus) []string {
	out := make([]string, len(weeks))
	for i, w := range weeks {
		out[i] = w.Status
	}
	return out
}

func TestClassify_NoBreachAllEnough(t *testing.T) {
	weeks := weeksFromStocks([]int{200, 190, 180, 170, 160, 150, 140, 130, 120, 110, 105, 101})
	Classify(weeks, 100)

	for _, s := range statuses(weeks) {
		assert.Equal(t, domain.StatusEnough, s)
	}
}

func TestClassify_LowPrecedesFirstOrder(t *testing.T) {
	weeks := weeksFromStocks([]int{120, 115, 110, 105, 95, 60, 50, 40, 30, 20, 10, 0})
	Classify(weeks, 60)

	assert.Equal(t, []string{
		domain.StatusEnough, domain.StatusEnough, domain.StatusEnough, domain.StatusEnough,
		domain.StatusLow,
		domain.StatusOrder, domain.StatusOrder, domain.StatusOrder, domain.StatusOrder,
		domain.StatusOrder, domain.StatusOrder, domain.StatusOrder,
	}, statuses(weeks))
}

func TestClassify_FirstWeekBreachingHasNoLow(t *testing.T) {
	weeks := weeksFromStocks([]int{50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150, 160})
	Classify(weeks, 55)

	require.Equal(t, domain.StatusOrder, weeks[0].Status)
	for _, s := range statuses(weeks) {
		assert.NotEqual(t, domain.StatusLow, s)
	}
}

func TestClassify_EveryBreachingWeekIsOrder(t *testing.T) {
	// Non-monotonic series: breaches are scattered, all must be "order".
	weeks := weeksFromStocks([]int{120, 40, 130, 50, 140, 60, 150, 70, 160, 80, 170, 90})
	Classify(weeks, 100)

	got := statuses(weeks)
	for i, s := range []int{120, 40, 130, 50, 140, 60, 150, 70, 160, 80, 170, 90} {
		if s <= 100 {
			assert.Equal(t, domain.StatusOrder, got[i], "week %d", i)
		}
	}
	// The week before the first breach is the only "low".
	assert.Equal(t, domain.StatusLow, got[0])
}

func TestClassify_AtMostOneLow(t *testing.T) {
	cases := [][]int{
		{100, 90, 80, 70, 65, 62, 61, 59, 40, 30, 20, 10},
		{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
		{500, 400, 300, 200, 190, 180, 170, 160, 150, 140, 130, 120},
		{70, 80, 50, 90, 40, 100, 30, 110, 20, 120, 10, 130},
	}

	for _, stocks := range cases {
		weeks := weeksFromStocks(stocks)
		Classify(weeks, 60)

		lows := 0
		firstOrder := -1
		for i, w := range weeks {
			if w.Status == domain.StatusLow {
				lows++
				// The chronologically next week must be the first breach.
				require.Less(t, i+1, len(weeks))
				assert.Equal(t, domain.StatusOrder, weeks[i+1].Status)
			}
			if w.Status == domain.StatusOrder && firstOrder == -1 {
				firstOrder = i
			}
		}
		assert.LessOrEqual(t, lows, 1)
		if lows == 1 {
			// No order week may precede the low week.
			for i := 0; weeks[i].Status != domain.StatusLow; i++ {
				assert.NotEqual(t, domain.StatusOrder, weeks[i].Status)
			}
		}
		if firstOrder == -1 {
			assert.Zero(t, lows, "no order week implies no low week")
		}
	}
}

func TestClassify_ZeroStockAlwaysBreaches(t *testing.T) {
	weeks := weeksFromStocks([]int{0})
	Classify(weeks, 0)

	assert.Equal(t, domain.StatusOrder, weeks[0].Status)
}

func TestClassify_BreachingHistoricalWeekIsOrder(t *testing.T) {
	weeks := weeksFromStocks([]int{30, 120, 130, 140, 150, 160, 170, 180, 190, 200, 210, 220})
	Classify(weeks, 50)

	assert.Equal(t, domain.StatusOrder, weeks[0].Status)
	assert.True(t, weeks[0].IsHistorical)
}
