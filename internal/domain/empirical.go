package domain

// Distribution is a normal distribution given by mean and standard deviation.
type Distribution struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stdDev" yaml:"std_dev"`
}

// EmpiricalTable holds the measured donor behaviour of past campaigns.
// Retention entries are in percent and keyed by years since acquisition;
// the last entry applies to every later year.
type EmpiricalTable struct {
	DonorsPerDay   Distribution   `json:"donorsPerDay" yaml:"donors_per_day"`
	AnnualDonation Distribution   `json:"annualDonation" yaml:"annual_donation"` // CHF
	Retention      []Distribution `json:"retention" yaml:"retention"`
	Epsilon        float64        `json:"epsilon" yaml:"epsilon"`
	MinDonation    float64        `json:"minDonation" yaml:"min_donation"` // CHF floor per donor and year
}

// DefaultEmpiricalTable returns the national booth campaign figures.
func DefaultEmpiricalTable() EmpiricalTable {
	return EmpiricalTable{
		DonorsPerDay:   Distribution{Mean: 3.5, StdDev: 0.75},
		AnnualDonation: Distribution{Mean: 261.48, StdDev: 320.87},
		Retention: []Distribution{
			{Mean: 83.0, StdDev: 0.7}, // year 1
			{Mean: 81.9, StdDev: 0.7}, // year 2
			{Mean: 85.3, StdDev: 0.7}, // year 3+
		},
		Epsilon:     0.0001,
		MinDonation: 50,
	}
}

// RetentionFor returns the retention distribution for a cohort of the given
// age (1-based). Ages beyond the table reuse its last row.
func (t EmpiricalTable) RetentionFor(age int) Distribution {
	if len(t.Retention) == 0 {
		return Distribution{}
	}
	if age < 1 {
		age = 1
	}
	if age > len(t.Retention) {
		age = len(t.Retention)
	}
	return t.Retention[age-1]
}
