package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
name: Herbst-Planung
settings:
  trials: 200
  seed: 42
scenarios:
  - name: Basis
    campaigns:
      - name: Zürich
        booth_days: 1000
        donors_per_day: 3.5
        annual_donation: 261.48
        retention_rate_percent: 83
        booth_cost_per_day: 830
        empirical:
          donors_per_day: true
          annual_donation: true
          retention: true
      - name: Bern
        booth_days: 400
        donors_per_day: 4
        annual_donation: 240
        retention_rate_percent: 80
        booth_cost_per_day: 780
        start_year: 2
  - name: Jährlich
    repeat_years: 5
    campaigns:
      - name: Basel
        booth_days: 500
        donors_per_day: 3.5
        annual_donation: 261.48
        retention_rate_percent: 83
        booth_cost_per_day: 830
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	plan, err := parser.LoadFromFile(writePlan(t, samplePlan))
	require.NoError(t, err)

	assert.Equal(t, "Herbst-Planung", plan.Name)
	require.Len(t, plan.Scenarios, 2)
	require.NotNil(t, plan.Settings.Trials)
	assert.Equal(t, 200, *plan.Settings.Trials)
	assert.Equal(t, uint64(42), *plan.Settings.Seed)
	assert.Nil(t, plan.Settings.DiscountRate)

	base := plan.Scenarios[0]
	require.Len(t, base.Campaigns, 2)
	zurich := base.Campaigns[0]
	assert.Equal(t, 1000.0, zurich.BoothDays)
	require.NotNil(t, zurich.Empirical.Retention)
	assert.True(t, *zurich.Empirical.Retention)

	bern := base.Campaigns[1]
	assert.Equal(t, 2, bern.StartYear)
	assert.Nil(t, bern.Empirical.DonorsPerDay, "unset flags fall back to inference")

	yearly, ok := plan.FindScenario("Jährlich")
	require.True(t, ok)
	portfolio := yearly.Portfolio()
	require.Len(t, portfolio, 5)
	assert.Equal(t, 4, portfolio[4].StartYear)
	assert.Equal(t, "Basel 5", portfolio[4].Name)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("scenarios: [unclosed"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidatePlan(t *testing.T) {
	valid := func() *domain.Plan {
		return &domain.Plan{
			Scenarios: []domain.Scenario{{
				Name:      "A",
				Campaigns: []domain.CampaignParameters{domain.DefaultCampaign(domain.DefaultEmpiricalTable())},
			}},
		}
	}
	intPtr := func(v int) *int { return &v }
	floatPtr := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		mutate  func(p *domain.Plan)
		wantErr string
	}{
		{"valid", func(p *domain.Plan) {}, ""},
		{"empty campaigns allowed", func(p *domain.Plan) { p.Scenarios[0].Campaigns = nil }, ""},
		{"no scenarios", func(p *domain.Plan) { p.Scenarios = nil }, "no scenarios provided"},
		{"missing name", func(p *domain.Plan) { p.Scenarios[0].Name = "" }, "name is required"},
		{"duplicate name", func(p *domain.Plan) { p.Scenarios = append(p.Scenarios, p.Scenarios[0]) }, "duplicate name"},
		{"zero booth days", func(p *domain.Plan) { p.Scenarios[0].Campaigns[0].BoothDays = 0 }, "booth days must be positive"},
		{"NaN booth days", func(p *domain.Plan) { p.Scenarios[0].Campaigns[0].BoothDays = math.NaN() }, "booth days must be finite"},
		{"infinite booth cost", func(p *domain.Plan) { p.Scenarios[0].Campaigns[0].BoothCostPerDay = math.Inf(1) }, "booth cost per day must be finite"},
		{"NaN retention", func(p *domain.Plan) { p.Scenarios[0].Campaigns[0].RetentionRatePercent = math.NaN() }, "retention rate must be finite"},
		{"zero donors per day", func(p *domain.Plan) { p.Scenarios[0].Campaigns[0].DonorsPerDay = 0 }, "donors per day must be positive"},
		{"NaN discount rate", func(p *domain.Plan) { p.Settings.DiscountRate = floatPtr(math.NaN()) }, "discount_rate"},
		{"retention out of range", func(p *domain.Plan) { p.Scenarios[0].Campaigns[0].RetentionRatePercent = 120 }, "retention rate"},
		{"repeat needs one campaign", func(p *domain.Plan) {
			p.Scenarios[0].RepeatYears = 3
			p.Scenarios[0].Campaigns = append(p.Scenarios[0].Campaigns, p.Scenarios[0].Campaigns[0])
		}, "exactly one campaign"},
		{"repeat too long", func(p *domain.Plan) { p.Scenarios[0].RepeatYears = 80 }, "repeat_years"},
		{"zero trials", func(p *domain.Plan) { p.Settings.Trials = intPtr(0) }, "trials must be positive"},
		{"bad discount rate", func(p *domain.Plan) { p.Settings.DiscountRate = floatPtr(-1) }, "discount_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := valid()
			tt.mutate(plan)

			err := NewInputParser().ValidatePlan(plan)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_NonFiniteValues(t *testing.T) {
	data := []byte(`
scenarios:
  - name: A
    campaigns:
      - booth_days: .nan
        donors_per_day: 3.5
        annual_donation: 261.48
        retention_rate_percent: 83
        booth_cost_per_day: 830
  - name: B
    campaigns:
      - booth_days: 100
        donors_per_day: 3.5
        annual_donation: 261.48
        retention_rate_percent: 83
        booth_cost_per_day: .inf
`)
	_, err := NewInputParser().Parse(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "booth days must be finite")
}

func TestSavePlan_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	plan, err := parser.Parse([]byte(samplePlan))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, SavePlan(plan, path))

	again, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, plan, again)
}
