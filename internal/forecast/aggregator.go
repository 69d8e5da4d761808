// internal/forecast/aggregator.go
package forecast

import (
	"math"
	"time"

	"github.com/warelens/backend-go/internal/domain"
)

// TrailingWeeks is the size of the demand sampling window. Weeks with no
// records still count as zero-demand weeks, so the divisor is always 12.
const TrailingWeeks = 12

// WeeklyDemandStats aggregates an item's daily demand records into the mean
// weekly demand and the population standard deviation of the trailing
// 12 weekly totals, both anchored at now.
func WeeklyDemandStats(history []domain.DemandRecord, now time.Time) (weeklyDemand, demandVariability float64) {
	totals := weeklyTotals(history, now)

	var sum float64
	for _, t := range totals {
		sum += t
	}
	weeklyDemand = sum / TrailingWeeks

	// A single observation carries no spread information; define it as zero
	// rather than let the deviation of one sample leak through.
	if len(history) <= 1 {
		return weeklyDemand, 0
	}

	var sqDev float64
	for _, t := range totals {
		d := t - weeklyDemand
		sqDev += d * d
	}
	demandVariability = math.Sqrt(sqDev / TrailingWeeks)

	return weeklyDemand, demandVariability
}

// weeklyTotals partitions the 12-week window ending at now into
// non-overlapping 7-day buckets, walking backward from now in 7-day steps.
// Bucket i covers the calendar days [now-7(i+1)d, now-7(i+1)d+6d] inclusive.
func weeklyTotals(history []domain.DemandRecord, now time.Time) [TrailingWeeks]float64 {
	var totals [TrailingWeeks]float64

	anchor := dateOnly(now)
	for i := 0; i < TrailingWeeks; i++ {
		start := anchor.AddDate(0, 0, -7*(i+1))
		end := start.AddDate(0, 0, 6)
		for _, rec := range history {
			day := dateOnly(rec.Date)
			if day.Before(start) || day.After(end) {
				continue
			}
			totals[i] += float64(rec.Quantity)
		}
	}

	return totals
}

// dateOnly strips the time-of-day so bucket membership is decided per
// calendar day, matching how demand records are dated.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
