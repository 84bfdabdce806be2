package compare

import (
	"github.com/rgehrsitz/donorcast/internal/calculation"
	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/shopspring/decimal"
)

// winMargin is how much larger an NPV must be to count as clearly better.
var winMargin = decimal.NewFromFloat(1.1)

// ComparisonResult represents a single scenario forecast with calculated metrics
type ComparisonResult struct {
	ScenarioName string                  `json:"scenarioName"`
	Description  string                  `json:"description,omitempty"`
	Campaigns    int                     `json:"campaigns"`
	Forecast     *domain.AggregateResult `json:"-"`

	// Key Metrics
	Investment        decimal.Decimal `json:"investment"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	NPV               decimal.Decimal `json:"npv"`
	NPVROI            decimal.Decimal `json:"npvRoi"`
	DiscountedPayback domain.Payback  `json:"discountedPayback"`
	PositiveNPVShare  decimal.Decimal `json:"positiveNpvShare"`

	// Comparison to Base
	NPVDiffFromBase        decimal.Decimal `json:"npvDiffFromBase"`
	NPVPctFromBase         decimal.Decimal `json:"npvPctFromBase"`
	RevenueDiffFromBase    decimal.Decimal `json:"revenueDiffFromBase"`
	InvestmentDiffFromBase decimal.Decimal `json:"investmentDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	PlanName           string             `json:"planName,omitempty"`
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Winner             string             `json:"winner"` // scenario name, empty on a tie
	Trials             int                `json:"trials"`
	Seed               uint64             `json:"seed"`
}

// All returns the base result followed by the alternatives.
func (cs *ComparisonSet) All() []ComparisonResult {
	out := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		out = append(out, *cs.BaseResult)
	}
	return append(out, cs.AlternativeResults...)
}

// MetricsCalculator derives comparison metrics from forecasts
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics extracts key metrics from a forecast
func (mc *MetricsCalculator) CalculateMetrics(sc *domain.Scenario, res *domain.AggregateResult) ComparisonResult {
	s := calculation.Summarize(res)
	return ComparisonResult{
		ScenarioName:      sc.Name,
		Description:       sc.Description,
		Campaigns:         len(res.Campaigns),
		Forecast:          res,
		Investment:        s.Investment,
		TotalRevenue:      s.TotalRevenue,
		NetProfit:         s.NetProfit,
		NPV:               s.NPV,
		NPVROI:            s.NPVROI,
		DiscountedPayback: s.DiscountedPayback,
		PositiveNPVShare:  s.PositiveNPVShare,
	}
}

// CalculateComparison fills in the deltas of result against base
func (mc *MetricsCalculator) CalculateComparison(result, base ComparisonResult) ComparisonResult {
	result.NPVDiffFromBase = result.NPV.Sub(base.NPV)
	result.RevenueDiffFromBase = result.TotalRevenue.Sub(base.TotalRevenue)
	result.InvestmentDiffFromBase = result.Investment.Sub(base.Investment)

	if !base.NPV.IsZero() {
		result.NPVPctFromBase = result.NPVDiffFromBase.Div(base.NPV.Abs()).Mul(decimal.NewFromInt(100))
	} else {
		result.NPVPctFromBase = decimal.Zero
	}
	return result
}

// DetermineWinner returns the scenario whose NPV exceeds every other NPV
// times 1.1, or an empty string when no scenario is clearly ahead.
func DetermineWinner(results []ComparisonResult) string {
	if len(results) < 2 {
		return ""
	}

	best := 0
	for i := range results {
		if results[i].NPV.GreaterThan(results[best].NPV) {
			best = i
		}
	}
	for i := range results {
		if i == best {
			continue
		}
		if !results[best].NPV.GreaterThan(results[i].NPV.Mul(winMargin)) {
			return ""
		}
	}
	return results[best].ScenarioName
}
