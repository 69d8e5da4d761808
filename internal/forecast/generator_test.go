package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(42, 17.5, 3.2)
	second := Generate(42, 17.5, 3.2)

	assert.Equal(t, first, second)
}

func TestGenerate_HorizonLength(t *testing.T) {
	assert.Len(t, Generate(1, 10, 0), HorizonWeeks)
}

func TestGenerate_NonNegative(t *testing.T) {
	cases := []struct {
		name        string
		itemID      int64
		demand      float64
		variability float64
	}{
		{"zero demand", 1, 0, 0},
		{"small demand large variability", 7, 1, 50},
		{"typical", 3, 12, 4},
		{"high volume", 99, 250, 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range Generate(tc.itemID, tc.demand, tc.variability) {
				assert.GreaterOrEqual(t, v, 0)
			}
		})
	}
}

func TestGenerate_ZeroDemandZeroVariabilityIsAllZeros(t *testing.T) {
	for _, v := range Generate(5, 0, 0) {
		assert.Zero(t, v)
	}
}

func TestGenerate_MatchesTrigFormula(t *testing.T) {
	const (
		itemID      = int64(12)
		demand      = 40.0
		variability = 6.0
	)
	got := Generate(itemID, demand, variability)

	seed := float64(itemID) * 123
	for i := 0; i < HorizonWeeks; i++ {
		trend := 1 + math.Sin(seed+float64(i))*0.05
		want := math.Floor(demand*trend + math.Cos(seed+float64(i)*2)*variability*0.3)
		if want < 0 {
			want = 0
		}
		require.Equal(t, int(want), got[i], "week %d", i)
	}
}

func TestGenerate_DifferentItemsDiffer(t *testing.T) {
	// Different seeds should move at least one week of an otherwise identical
	// forecast.
	a := Generate(1, 100, 10)
	b := Generate(2, 100, 10)

	assert.NotEqual(t, a, b)
}
