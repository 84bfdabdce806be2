package calculation

import (
	"github.com/rgehrsitz/donorcast/internal/domain"
)

// CalendarYears is the shared calendar length for a portfolio: the latest
// start year plus horizon+1 years. An empty portfolio spans horizon years.
func CalendarYears(campaigns []domain.CampaignParameters, horizon int) int {
	if len(campaigns) == 0 {
		return horizon
	}
	maxStart := 0
	for _, c := range campaigns {
		maxStart = max(maxStart, c.StartYear)
	}
	return maxStart + horizon + 1
}

// RunPortfolioTrial runs every campaign's cohort independently and sums them
// onto the shared calendar at each campaign's start year. Investment is booked
// in the start year.
func RunPortfolioTrial(s *Sampler, campaigns []domain.CampaignParameters, horizon int) domain.TrialResult {
	years := CalendarYears(campaigns, horizon)
	t := domain.TrialResult{
		Donors:    make([]int, years),
		Revenue:   make([]float64, years),
		CashFlow:  make([]float64, years),
		Campaigns: make([]domain.CampaignTrial, len(campaigns)),
	}

	for i, p := range campaigns {
		rp := ResolveParameters(p, s.table)
		start := p.StartYear
		t.CashFlow[start] -= p.Investment().InexactFloat64()

		ages := min(horizon+1, years-start)
		c := simulateCohort(s, p, rp, ages)

		ct := domain.CampaignTrial{
			Donors:  make([]int, years),
			Revenue: make([]float64, years),
		}
		for age := range ages {
			y := start + age
			ct.Donors[y] = c.donors[age]
			ct.Revenue[y] = c.revenue[age]

			t.Donors[y] += c.donors[age]
			t.Revenue[y] += c.revenue[age]
			t.CashFlow[y] += c.revenue[age]
		}
		t.Campaigns[i] = ct
	}
	return t
}
