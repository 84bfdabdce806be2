package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// CampaignParameters describes one booth campaign. Values are read-only once a
// simulation run starts and may be shared between concurrent trials.
type CampaignParameters struct {
	Name                 string             `json:"name,omitempty" yaml:"name,omitempty"`
	BoothDays            float64            `json:"boothDays" yaml:"booth_days"`
	DonorsPerDay         float64            `json:"donorsPerDay" yaml:"donors_per_day"`
	AnnualDonation       float64            `json:"annualDonation" yaml:"annual_donation"`             // CHF per donor and year
	RetentionRatePercent float64            `json:"retentionRatePercent" yaml:"retention_rate_percent"` // 0..100
	BoothCostPerDay      float64            `json:"boothCostPerDay" yaml:"booth_cost_per_day"`
	StartYear            int                `json:"startYear" yaml:"start_year"`
	Empirical            EmpiricalSelection `json:"empirical" yaml:"empirical,omitempty"`
}

// EmpiricalSelection says, per field, whether the empirical distribution is
// used instead of the caller's value. A nil flag means "infer": the field is
// treated as empirical when it equals the empirical mean within tolerance.
type EmpiricalSelection struct {
	DonorsPerDay   *bool `json:"donorsPerDay,omitempty" yaml:"donors_per_day,omitempty"`
	AnnualDonation *bool `json:"annualDonation,omitempty" yaml:"annual_donation,omitempty"`
	Retention      *bool `json:"retention,omitempty" yaml:"retention,omitempty"`
}

// Explicit returns an EmpiricalSelection with all three flags set.
func Explicit(donors, donation, retention bool) EmpiricalSelection {
	return EmpiricalSelection{
		DonorsPerDay:   &donors,
		AnnualDonation: &donation,
		Retention:      &retention,
	}
}

// DefaultCampaign returns the reference campaign: 1000 booth days at CHF 830
// per day with all donor assumptions taken from the empirical table.
func DefaultCampaign(table EmpiricalTable) CampaignParameters {
	return CampaignParameters{
		BoothDays:            1000,
		DonorsPerDay:         table.DonorsPerDay.Mean,
		AnnualDonation:       table.AnnualDonation.Mean,
		RetentionRatePercent: table.RetentionFor(1).Mean,
		BoothCostPerDay:      830,
		Empirical:            Explicit(true, true, true),
	}
}

const (
	// MaxBoothDays bounds a campaign to a hundred years of daily canvassing.
	MaxBoothDays = 36500
	// MaxDonorsPerDay bounds the expected acquisition rate per booth day.
	MaxDonorsPerDay = 10000
)

// Validate rejects parameters the engine cannot simulate. Every float field
// must be finite; donors per day and annual donation must be positive.
func (p CampaignParameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"booth days", p.BoothDays},
		{"donors per day", p.DonorsPerDay},
		{"annual donation", p.AnnualDonation},
		{"retention rate", p.RetentionRatePercent},
		{"booth cost per day", p.BoothCostPerDay},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, f.name, f.value)
		}
	}

	if p.BoothDays <= 0 || p.BoothDays > MaxBoothDays {
		return fmt.Errorf("%w: booth days must be positive and at most %d, got %v", ErrInvalidParameter, MaxBoothDays, p.BoothDays)
	}
	if p.BoothCostPerDay <= 0 {
		return fmt.Errorf("%w: booth cost per day must be positive, got %v", ErrInvalidParameter, p.BoothCostPerDay)
	}
	if p.RetentionRatePercent < 0 || p.RetentionRatePercent > 100 {
		return fmt.Errorf("%w: retention rate must be between 0 and 100, got %v", ErrInvalidParameter, p.RetentionRatePercent)
	}
	if p.DonorsPerDay <= 0 || p.DonorsPerDay > MaxDonorsPerDay {
		return fmt.Errorf("%w: donors per day must be positive and at most %d, got %v", ErrInvalidParameter, MaxDonorsPerDay, p.DonorsPerDay)
	}
	if p.AnnualDonation <= 0 {
		return fmt.Errorf("%w: annual donation must be positive, got %v", ErrInvalidParameter, p.AnnualDonation)
	}
	if p.StartYear < 0 {
		return fmt.Errorf("%w: start year cannot be negative, got %d", ErrInvalidParameter, p.StartYear)
	}
	return nil
}

// Investment is booth days times cost per day. It is never sampled.
func (p CampaignParameters) Investment() decimal.Decimal {
	return decimal.NewFromFloat(p.BoothDays).Mul(decimal.NewFromFloat(p.BoothCostPerDay))
}

// BoothDayCount is the number of whole canvassing days.
func (p CampaignParameters) BoothDayCount() int {
	return int(p.BoothDays)
}

// RepeatAnnually builds a portfolio running the same campaign once a year for
// the given number of years, starting at year 0.
func RepeatAnnually(p CampaignParameters, years int) []CampaignParameters {
	if years <= 0 {
		return nil
	}
	out := make([]CampaignParameters, years)
	for i := range out {
		c := p
		c.StartYear = i
		if p.Name != "" {
			c.Name = fmt.Sprintf("%s %d", p.Name, i+1)
		}
		out[i] = c
	}
	return out
}

// TotalInvestment sums the deterministic investment of every campaign.
func TotalInvestment(campaigns []CampaignParameters) decimal.Decimal {
	total := decimal.Zero
	for _, c := range campaigns {
		total = total.Add(c.Investment())
	}
	return total
}
