package calculation

import (
	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summarize derives the headline money figures of a forecast. A zero
// investment is not an error: the ratio metrics are reported as zero.
func Summarize(res *domain.AggregateResult) domain.Summary {
	investment := res.TotalInvestment
	revenue := decimal.NewFromFloat(res.TotalRevenue())
	npv := decimal.NewFromFloat(res.MeanNPV)

	s := domain.Summary{
		Investment:        investment,
		TotalRevenue:      revenue,
		NetProfit:         revenue.Sub(investment),
		NPV:               npv,
		SimpleROI:         decimal.Zero,
		NPVROI:            decimal.Zero,
		RevenueMultiple:   decimal.Zero,
		DiscountedPayback: res.DiscountedPayback,
		SimplePayback:     res.SimplePayback,
		PositiveNPVShare:  decimal.NewFromFloat(res.PositiveNPVShare),
	}
	if investment.GreaterThan(decimal.Zero) {
		s.SimpleROI = s.NetProfit.Div(investment).Mul(hundred)
		s.RevenueMultiple = revenue.Div(investment)
	}
	s.NPVROI = ROI(res.MeanNPV, investment)
	return s
}

// ROI returns NPV relative to investment in percent, or zero when the
// investment is degenerate.
func ROI(npv float64, investment decimal.Decimal) decimal.Decimal {
	if !investment.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(npv).Div(investment).Mul(hundred)
}
