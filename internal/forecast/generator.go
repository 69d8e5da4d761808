// internal/forecast/generator.go
package forecast

import "math"

// HorizonWeeks is the length of the future forecast.
const HorizonWeeks = 8

// Generate produces the 8-week demand forecast for an item. The sequence is
// a deliberate deterministic heuristic, not a fitted model: a trigonometric
// seed derived from the item id oscillates the weekly mean mildly and mixes
// in a fraction of the demand variability. Identical inputs always yield an
// identical forecast.
//
// Values are floored, then clamped to zero (the floor variant; see
// DESIGN.md).
func Generate(itemID int64, weeklyDemand, demandVariability float64) []int {
	seed := float64(itemID) * 123

	out := make([]int, HorizonWeeks)
	for i := 0; i < HorizonWeeks; i++ {
		trend := 1 + math.Sin(seed+float64(i))*0.05
		variabilityTerm := math.Cos(seed+float64(i)*2) * demandVariability * 0.3

		v := math.Floor(weeklyDemand*trend + variabilityTerm)
		if v < 0 {
			v = 0
		}
		out[i] = int(v)
	}

	return out
}
