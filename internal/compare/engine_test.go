package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/donorcast/internal/calculation"
	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/shopspring/decimal"
)

func testPlan() *domain.Plan {
	campaign := domain.DefaultCampaign(domain.DefaultEmpiricalTable())
	campaign.BoothDays = 200
	return &domain.Plan{
		Name: "Test",
		Scenarios: []domain.Scenario{
			{Name: "Einmalig", Campaigns: []domain.CampaignParameters{campaign}},
			{Name: "Jährlich", RepeatYears: 4, Campaigns: []domain.CampaignParameters{campaign}},
			{Name: "Leer"},
		},
	}
}

func testCompareEngine() *CompareEngine {
	cfg := calculation.DefaultConfig()
	cfg.Trials = 60
	cfg.Seed = 11
	return NewCompareEngine(calculation.NewEngine(cfg))
}

func TestCompareEngine_CompareScenarios(t *testing.T) {
	ce := testCompareEngine()

	set, err := ce.CompareScenarios(context.Background(), testPlan(), "Einmalig", []string{"Jährlich"})
	if err != nil {
		t.Fatalf("CompareScenarios returned error: %v", err)
	}

	if set.BaseResult.ScenarioName != "Einmalig" {
		t.Errorf("Unexpected base %s", set.BaseResult.ScenarioName)
	}
	if len(set.AlternativeResults) != 1 {
		t.Fatalf("Expected 1 alternative, got %d", len(set.AlternativeResults))
	}

	alt := set.AlternativeResults[0]
	if alt.Campaigns != 4 {
		t.Errorf("Expected 4 repeated campaigns, got %d", alt.Campaigns)
	}
	if !alt.InvestmentDiffFromBase.Equal(set.BaseResult.Investment.Mul(decimal.NewFromInt(3))) {
		t.Errorf("Expected investment diff of three campaigns, got %s", alt.InvestmentDiffFromBase)
	}
	if !alt.NPVDiffFromBase.Equal(alt.NPV.Sub(set.BaseResult.NPV)) {
		t.Error("NPV diff does not match NPVs")
	}
	if set.Winner != "Jährlich" {
		t.Errorf("Expected four campaigns to beat one, winner %q", set.Winner)
	}
	if set.Trials != 60 || set.Seed != 11 {
		t.Errorf("Expected run settings on the set, got %d/%d", set.Trials, set.Seed)
	}
}

func TestCompareEngine_AllScenarios(t *testing.T) {
	ce := testCompareEngine()

	set, err := ce.CompareScenarios(context.Background(), testPlan(), "Einmalig", nil)
	if err != nil {
		t.Fatalf("CompareScenarios returned error: %v", err)
	}
	if len(set.AlternativeResults) != 2 {
		t.Fatalf("Expected 2 alternatives, got %d", len(set.AlternativeResults))
	}

	empty := set.AlternativeResults[1]
	if empty.ScenarioName != "Leer" || !empty.NPV.IsZero() || !empty.Investment.IsZero() {
		t.Errorf("Expected zero forecast for empty scenario, got %+v", empty)
	}
}

func TestCompareEngine_UnknownScenario(t *testing.T) {
	ce := testCompareEngine()

	if _, err := ce.CompareScenarios(context.Background(), testPlan(), "Fehlt", nil); err == nil {
		t.Error("Expected error for unknown base")
	}
	if _, err := ce.CompareScenarios(context.Background(), testPlan(), "Einmalig", []string{"Fehlt"}); err == nil {
		t.Error("Expected error for unknown alternative")
	}
}

func TestCompareEngine_Cancelled(t *testing.T) {
	ce := testCompareEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ce.CompareScenarios(ctx, testPlan(), "Einmalig", nil); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
