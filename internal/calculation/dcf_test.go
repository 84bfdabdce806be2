package calculation

import (
	"math"
	"testing"

	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPV(t *testing.T) {
	cf := []float64{-1000, 500, 500, 500}

	want := -1000 + 500/1.03 + 500/math.Pow(1.03, 2) + 500/math.Pow(1.03, 3)
	assert.InDelta(t, want, NPV(cf, 0.03), 1e-9)
	assert.InDelta(t, 500.0, NPV(cf, 0), 1e-9)
	assert.Equal(t, 0.0, NPV(nil, 0.03))
}

func TestNPV_DecreasesWithRate(t *testing.T) {
	cf := []float64{-830000, 226000, 850000, 700000, 600000, 510000}

	prev := NPV(cf, 0)
	for _, rate := range []float64{0.01, 0.03, 0.05, 0.08, 0.12} {
		npv := NPV(cf, rate)
		assert.Less(t, npv, prev, "rate %v", rate)
		prev = npv
	}
}

func TestAnalyzeCashFlows(t *testing.T) {
	cf := []float64{-100, 60, 60}

	a := AnalyzeCashFlows(cf, 0.03)

	require.Len(t, a.Discounted, 3)
	assert.Equal(t, []float64{-100, -40, 20}, a.CumulativeUndiscounted)
	assert.InDelta(t, 60/1.03, a.Discounted[1], 1e-9)
	assert.InDelta(t, -100+60/1.03, a.CumulativeDiscounted[1], 1e-9)
	assert.InDelta(t, a.NPV, a.CumulativeDiscounted[2], 1e-9)
	assert.InDelta(t, NPV(cf, 0.03), a.NPV, 1e-9)
}

func TestPaybackYear(t *testing.T) {
	tests := []struct {
		name       string
		cumulative []float64
		want       domain.Payback
	}{
		{"pays back in year 2", []float64{-10, -2, 5, 9}, domain.Payback{Year: 2, Reached: true}},
		{"zero is not payback", []float64{-10, 0, 0, 1}, domain.Payback{Year: 3, Reached: true}},
		{"pays back in the final year", []float64{-10, -5, 1}, domain.Payback{Year: 2, Reached: true}},
		{"never pays back", []float64{-10, -5, -1}, domain.Payback{Year: 2, Reached: false}},
		{"empty series", nil, domain.Payback{Year: 0, Reached: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaybackYear(tt.cumulative))
		})
	}
}

func TestPaybackYear_FinalYearDistinguishableFromNever(t *testing.T) {
	onTime := PaybackYear([]float64{-3, -2, 1})
	never := PaybackYear([]float64{-3, -2, -1})

	assert.Equal(t, onTime.Year, never.Year)
	assert.NotEqual(t, onTime, never)
}
