package compare

import (
	"testing"

	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/shopspring/decimal"
)

func resultWithNPV(name string, npv int64) ComparisonResult {
	return ComparisonResult{ScenarioName: name, NPV: decimal.NewFromInt(npv)}
}

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()

	sc := &domain.Scenario{Name: "Zürich", Description: "Bahnhof"}
	res := &domain.AggregateResult{
		MeanYearlyRevenue:        []float64{100, 200, 300},
		MeanCumulativeDiscounted: []float64{-400, -250, 50},
		MeanNPV:                  50,
		PositiveNPVShare:         0.6,
		TotalInvestment:          decimal.NewFromInt(500),
		DiscountedPayback:        domain.Payback{Year: 2, Reached: true},
		Campaigns:                []domain.CampaignContribution{{Name: "a"}},
	}

	result := calc.CalculateMetrics(sc, res)

	if result.ScenarioName != "Zürich" || result.Description != "Bahnhof" {
		t.Errorf("Unexpected identity: %s / %s", result.ScenarioName, result.Description)
	}
	if result.Campaigns != 1 {
		t.Errorf("Expected 1 campaign, got %d", result.Campaigns)
	}
	if !result.TotalRevenue.Equal(decimal.NewFromInt(600)) {
		t.Errorf("Expected revenue 600, got %s", result.TotalRevenue)
	}
	if !result.NetProfit.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected net profit 100, got %s", result.NetProfit)
	}
	if !result.NPV.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected NPV 50, got %s", result.NPV)
	}
	if !result.DiscountedPayback.Reached || result.DiscountedPayback.Year != 2 {
		t.Errorf("Expected payback in year 2, got %+v", result.DiscountedPayback)
	}
	if result.Forecast != res {
		t.Error("Expected forecast to be kept")
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{
		ScenarioName: "Base",
		NPV:          decimal.NewFromInt(1000000),
		TotalRevenue: decimal.NewFromInt(2000000),
		Investment:   decimal.NewFromInt(830000),
	}
	alt := ComparisonResult{
		ScenarioName: "Alt",
		NPV:          decimal.NewFromInt(1250000),
		TotalRevenue: decimal.NewFromInt(2400000),
		Investment:   decimal.NewFromInt(830000),
	}

	result := calc.CalculateComparison(alt, base)

	if !result.NPVDiffFromBase.Equal(decimal.NewFromInt(250000)) {
		t.Errorf("Expected NPV diff 250000, got %s", result.NPVDiffFromBase)
	}
	if !result.NPVPctFromBase.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected NPV change 25%%, got %s", result.NPVPctFromBase)
	}
	if !result.RevenueDiffFromBase.Equal(decimal.NewFromInt(400000)) {
		t.Errorf("Expected revenue diff 400000, got %s", result.RevenueDiffFromBase)
	}
	if !result.InvestmentDiffFromBase.IsZero() {
		t.Errorf("Expected no investment diff, got %s", result.InvestmentDiffFromBase)
	}
}

func TestMetricsCalculator_CalculateComparison_NegativeBase(t *testing.T) {
	calc := NewMetricsCalculator()

	base := resultWithNPV("Base", -200)
	alt := resultWithNPV("Alt", -100)

	result := calc.CalculateComparison(alt, base)

	// Improvement over a negative base reads as a positive change.
	if !result.NPVPctFromBase.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected +50%%, got %s", result.NPVPctFromBase)
	}

	zero := calc.CalculateComparison(alt, resultWithNPV("Base", 0))
	if !zero.NPVPctFromBase.IsZero() {
		t.Errorf("Expected 0%% against a zero base, got %s", zero.NPVPctFromBase)
	}
}

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		name    string
		results []ComparisonResult
		want    string
	}{
		{"single scenario", []ComparisonResult{resultWithNPV("A", 100)}, ""},
		{"clear winner", []ComparisonResult{resultWithNPV("A", 100), resultWithNPV("B", 120)}, "B"},
		{"within margin", []ComparisonResult{resultWithNPV("A", 100), resultWithNPV("B", 109)}, ""},
		{"exactly at margin", []ComparisonResult{resultWithNPV("A", 100), resultWithNPV("B", 110)}, ""},
		{"base wins", []ComparisonResult{resultWithNPV("A", 200), resultWithNPV("B", 100)}, "A"},
		{"must beat all", []ComparisonResult{
			resultWithNPV("A", 100), resultWithNPV("B", 200), resultWithNPV("C", 190),
		}, ""},
		{"three way", []ComparisonResult{
			resultWithNPV("A", 100), resultWithNPV("B", 300), resultWithNPV("C", 190),
		}, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineWinner(tt.results); got != tt.want {
				t.Errorf("DetermineWinner() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComparisonSet_All(t *testing.T) {
	base := resultWithNPV("Base", 1)
	cs := &ComparisonSet{
		BaseResult:         &base,
		AlternativeResults: []ComparisonResult{resultWithNPV("A", 2), resultWithNPV("B", 3)},
	}

	all := cs.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(all))
	}
	if all[0].ScenarioName != "Base" || all[2].ScenarioName != "B" {
		t.Errorf("Unexpected order: %s ... %s", all[0].ScenarioName, all[2].ScenarioName)
	}
}
