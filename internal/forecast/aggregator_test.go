package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelens/backend-go/internal/domain"
)

var testNow = time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

// historyWithWeeklyQty builds one record per trailing week, each dated at the
// start of its bucket.
func historyWithWeeklyQty(itemID int64, quantities []int) []domain.DemandRecord {
	var history []domain.DemandRecord
	for i, q := range quantities {
		history = append(history, domain.DemandRecord{
			ItemID:   itemID,
			Date:     testNow.AddDate(0, 0, -7*(i+1)),
			Quantity: q,
		})
	}
	return history
}

func TestWeeklyDemandStats_UniformDemand(t *testing.T) {
	quantities := make([]int, TrailingWeeks)
	for i := range quantities {
		quantities[i] = 12
	}
	history := historyWithWeeklyQty(1, quantities)

	mean, variability := WeeklyDemandStats(history, testNow)

	assert.InDelta(t, 12.0, mean, 1e-9)
	assert.InDelta(t, 0.0, variability, 1e-9)
}

func TestWeeklyDemandStats_EmptyWeeksCountAsZero(t *testing.T) {
	// Records in only 3 of the 12 weeks; the other 9 contribute zero totals,
	// not excluded data points.
	history := historyWithWeeklyQty(1, []int{24, 24, 24})

	mean, _ := WeeklyDemandStats(history, testNow)

	assert.InDelta(t, 72.0/TrailingWeeks, mean, 1e-9)
}

func TestWeeklyDemandStats_PopulationStdDev(t *testing.T) {
	// Six weeks of 10 and six weeks of 20: mean 15, every total deviates by
	// 5, so the population stddev is exactly 5.
	quantities := []int{10, 20, 10, 20, 10, 20, 10, 20, 10, 20, 10, 20}
	history := historyWithWeeklyQty(1, quantities)

	mean, variability := WeeklyDemandStats(history, testNow)

	assert.InDelta(t, 15.0, mean, 1e-9)
	assert.InDelta(t, 5.0, variability, 1e-9)
}

func TestWeeklyDemandStats_EmptyHistory(t *testing.T) {
	mean, variability := WeeklyDemandStats(nil, testNow)

	assert.Zero(t, mean)
	assert.Zero(t, variability)
}

func TestWeeklyDemandStats_SingleRecordHasZeroVariability(t *testing.T) {
	history := []domain.DemandRecord{
		{ItemID: 1, Date: testNow.AddDate(0, 0, -7), Quantity: 30},
	}

	mean, variability := WeeklyDemandStats(history, testNow)

	assert.InDelta(t, 30.0/TrailingWeeks, mean, 1e-9)
	assert.Zero(t, variability)
}

func TestWeeklyDemandStats_RecordsOutsideWindowIgnored(t *testing.T) {
	history := []domain.DemandRecord{
		// Day of "now" itself: the newest bucket ends the day before.
		{ItemID: 1, Date: testNow, Quantity: 100},
		// Older than the 12-week window.
		{ItemID: 1, Date: testNow.AddDate(0, 0, -7*(TrailingWeeks+1)), Quantity: 100},
	}

	mean, _ := WeeklyDemandStats(history, testNow)

	assert.Zero(t, mean)
}

func TestWeeklyDemandStats_BucketEdgesInclusive(t *testing.T) {
	// Last day of the newest bucket (now-1d) and its first day (now-7d) both
	// belong to bucket 0.
	history := []domain.DemandRecord{
		{ItemID: 1, Date: testNow.AddDate(0, 0, -1), Quantity: 5},
		{ItemID: 1, Date: testNow.AddDate(0, 0, -7), Quantity: 7},
	}

	mean, _ := WeeklyDemandStats(history, testNow)

	require.InDelta(t, 12.0/TrailingWeeks, mean, 1e-9)
}

func TestWeeklyDemandStats_NonNegative(t *testing.T) {
	histories := [][]domain.DemandRecord{
		nil,
		historyWithWeeklyQty(1, []int{0, 0, 0}),
		historyWithWeeklyQty(2, []int{1, 99, 3, 0, 42}),
	}

	for _, history := range histories {
		mean, variability := WeeklyDemandStats(history, testNow)
		assert.GreaterOrEqual(t, mean, 0.0)
		assert.GreaterOrEqual(t, variability, 0.0)
	}
}
