package calculation

import (
	"math"

	"github.com/rgehrsitz/donorcast/internal/domain"
)

// ResolvedParameters are the sampling means for one campaign together with
// the per-field empirical mode.
type ResolvedParameters struct {
	DonorsPerDay     float64
	AnnualDonation   float64
	RetentionPercent float64

	EmpiricalDonors    bool
	EmpiricalDonation  bool
	EmpiricalRetention bool
}

// ResolveParameters decides for each field whether the empirical mean or the
// caller's value drives sampling. Explicit flags win; unset flags fall back to
// equality with the empirical mean within the table's epsilon.
func ResolveParameters(p domain.CampaignParameters, table domain.EmpiricalTable) ResolvedParameters {
	r := ResolvedParameters{
		DonorsPerDay:     p.DonorsPerDay,
		AnnualDonation:   p.AnnualDonation,
		RetentionPercent: p.RetentionRatePercent,
	}

	r.EmpiricalDonors = useEmpirical(p.Empirical.DonorsPerDay, p.DonorsPerDay, table.DonorsPerDay.Mean, table.Epsilon)
	r.EmpiricalDonation = useEmpirical(p.Empirical.AnnualDonation, p.AnnualDonation, table.AnnualDonation.Mean, table.Epsilon)
	r.EmpiricalRetention = useEmpirical(p.Empirical.Retention, p.RetentionRatePercent, table.RetentionFor(1).Mean, table.Epsilon)

	if r.EmpiricalDonors {
		r.DonorsPerDay = table.DonorsPerDay.Mean
	}
	if r.EmpiricalDonation {
		r.AnnualDonation = table.AnnualDonation.Mean
	}
	if r.EmpiricalRetention {
		r.RetentionPercent = table.RetentionFor(1).Mean
	}
	return r
}

func useEmpirical(flag *bool, value, mean, epsilon float64) bool {
	if flag != nil {
		return *flag
	}
	return math.Abs(value-mean) < epsilon
}
