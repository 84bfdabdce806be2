package calculation

import (
	"math"

	"github.com/rgehrsitz/donorcast/internal/domain"
)

// CashFlowAnalysis holds the discounted views of one cash-flow sequence.
type CashFlowAnalysis struct {
	NPV                    float64
	Discounted             []float64
	CumulativeDiscounted   []float64
	CumulativeUndiscounted []float64
}

// NPV discounts every cash flow back to year 0 and sums them.
func NPV(cashFlows []float64, rate float64) float64 {
	npv := 0.0
	for y, cf := range cashFlows {
		npv += cf * math.Pow(1+rate, -float64(y))
	}
	return npv
}

// AnalyzeCashFlows computes NPV and the cumulative discounted and
// undiscounted series for the given rate.
func AnalyzeCashFlows(cashFlows []float64, rate float64) CashFlowAnalysis {
	n := len(cashFlows)
	a := CashFlowAnalysis{
		Discounted:             make([]float64, n),
		CumulativeDiscounted:   make([]float64, n),
		CumulativeUndiscounted: make([]float64, n),
	}

	var cumDisc, cumUndisc float64
	for y, cf := range cashFlows {
		d := cf * math.Pow(1+rate, -float64(y))
		a.Discounted[y] = d
		a.NPV += d

		cumDisc += d
		cumUndisc += cf
		a.CumulativeDiscounted[y] = cumDisc
		a.CumulativeUndiscounted[y] = cumUndisc
	}
	return a
}

// PaybackYear finds the first index whose cumulative value is strictly
// positive. Without one, the last index is returned with Reached unset.
func PaybackYear(cumulative []float64) domain.Payback {
	for y, v := range cumulative {
		if v > 0 {
			return domain.Payback{Year: y, Reached: true}
		}
	}
	last := len(cumulative) - 1
	if last < 0 {
		last = 0
	}
	return domain.Payback{Year: last}
}
