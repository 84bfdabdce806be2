package calculation

import (
	"math"
	"math/rand/v2"

	"github.com/rgehrsitz/donorcast/internal/domain"
)

// Sampler draws the stochastic quantities of one trial from its own stream.
type Sampler struct {
	rng   *rand.Rand
	table domain.EmpiricalTable
}

// NewSampler returns a sampler with an independent PCG stream for the given
// run seed and trial index.
func NewSampler(seed uint64, trial int, table domain.EmpiricalTable) *Sampler {
	return &Sampler{
		rng:   rand.New(rand.NewPCG(seed, uint64(trial))),
		table: table,
	}
}

func (s *Sampler) normal(mean, stdDev float64) float64 {
	return mean + s.rng.NormFloat64()*stdDev
}

// InitialCohort sums one Normal(donorsPerDay, σ) draw per booth day, each
// clamped at zero, and truncates the total to whole donors.
func (s *Sampler) InitialCohort(days int, donorsPerDay float64) int {
	sd := s.table.DonorsPerDay.StdDev
	total := 0.0
	for range days {
		total += math.Max(s.normal(donorsPerDay, sd), 0)
	}
	return int(total)
}

// Retention draws the year-over-year retention fraction for a cohort of the
// given age. The result is clamped to [0, 1].
func (s *Sampler) Retention(age int, rp ResolvedParameters) float64 {
	var d domain.Distribution
	if rp.EmpiricalRetention {
		d = s.table.RetentionFor(age)
	} else {
		// caller mean, first-year spread
		d = domain.Distribution{Mean: rp.RetentionPercent, StdDev: s.table.RetentionFor(1).StdDev}
	}
	f := s.normal(d.Mean/100, d.StdDev/100)
	return math.Min(1, math.Max(0, f))
}

// Donation draws the annual donation per donor, floored at the table minimum.
func (s *Sampler) Donation(mean float64) float64 {
	return math.Max(s.normal(mean, s.table.AnnualDonation.StdDev), s.table.MinDonation)
}

// PartialYear is the share of the acquisition year donors actually pay for:
// two to three months out of twelve.
func (s *Sampler) PartialYear() float64 {
	return (2 + s.rng.Float64()) / 12
}
