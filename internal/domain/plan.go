package domain

// Plan is a planning file: one or more scenarios, each a portfolio of campaigns.
type Plan struct {
	Name      string       `json:"name" yaml:"name"`
	Settings  PlanSettings `json:"settings" yaml:"settings,omitempty"`
	Scenarios []Scenario   `json:"scenarios" yaml:"scenarios"`
}

// PlanSettings overrides run settings for a plan. Unset fields keep the
// engine defaults.
type PlanSettings struct {
	Trials       *int     `json:"trials,omitempty" yaml:"trials,omitempty"`
	Seed         *uint64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Workers      *int     `json:"workers,omitempty" yaml:"workers,omitempty"`
	DiscountRate *float64 `json:"discountRate,omitempty" yaml:"discount_rate,omitempty"`
}

// Scenario is a named portfolio. With RepeatYears set, the first campaign is
// run once a year for that many years instead of the listed campaigns.
type Scenario struct {
	Name        string               `json:"name" yaml:"name"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	RepeatYears int                  `json:"repeatYears,omitempty" yaml:"repeat_years,omitempty"`
	Campaigns   []CampaignParameters `json:"campaigns" yaml:"campaigns"`
}

// Portfolio returns the campaigns the scenario simulates.
func (s Scenario) Portfolio() []CampaignParameters {
	if s.RepeatYears > 0 && len(s.Campaigns) > 0 {
		return RepeatAnnually(s.Campaigns[0], s.RepeatYears)
	}
	return s.Campaigns
}

// FindScenario returns the scenario with the given name.
func (p *Plan) FindScenario(name string) (*Scenario, bool) {
	for i := range p.Scenarios {
		if p.Scenarios[i].Name == name {
			return &p.Scenarios[i], true
		}
	}
	return nil, false
}
