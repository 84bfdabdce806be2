package calculation

import (
	"github.com/rgehrsitz/donorcast/internal/domain"
)

// cohort is one campaign's donors and revenue by age (years since acquisition).
type cohort struct {
	donors  []int
	revenue []float64
}

// simulateCohort runs one campaign's donor cohort for up to ages years. Age 0
// is the acquisition year with a partial donation period. The cohort stops
// once fewer than one donor survives.
func simulateCohort(s *Sampler, p domain.CampaignParameters, rp ResolvedParameters, ages int) cohort {
	c := cohort{
		donors:  make([]int, ages),
		revenue: make([]float64, ages),
	}
	if ages == 0 {
		return c
	}

	donors := s.InitialCohort(p.BoothDayCount(), rp.DonorsPerDay)
	c.donors[0] = donors
	partial := s.PartialYear()
	c.revenue[0] = float64(donors) * s.Donation(rp.AnnualDonation) * partial

	for age := 1; age < ages; age++ {
		donors = int(float64(donors) * s.Retention(age, rp))
		if donors < 1 {
			break
		}
		c.donors[age] = donors
		c.revenue[age] = float64(donors) * s.Donation(rp.AnnualDonation)
	}
	return c
}

// RunCampaignTrial runs one stochastic pass for a single campaign over
// horizon+1 years, ignoring its start year.
func RunCampaignTrial(s *Sampler, p domain.CampaignParameters, horizon int) domain.TrialResult {
	rp := ResolveParameters(p, s.table)
	years := horizon + 1
	c := simulateCohort(s, p, rp, years)

	cashFlow := make([]float64, years)
	copy(cashFlow, c.revenue)
	cashFlow[0] -= p.Investment().InexactFloat64()

	return domain.TrialResult{
		Donors:    c.donors,
		Revenue:   c.revenue,
		CashFlow:  cashFlow,
		Campaigns: []domain.CampaignTrial{{Donors: c.donors, Revenue: c.revenue}},
	}
}
