package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CampaignTrial is one campaign's share of a single trial, laid out on the
// shared calendar.
type CampaignTrial struct {
	Donors  []int
	Revenue []float64
}

// TrialResult is the outcome of one stochastic pass over the horizon. Index 0
// is the earliest campaign start.
type TrialResult struct {
	Donors    []int
	Revenue   []float64
	CashFlow  []float64
	Campaigns []CampaignTrial
}

// Years is the calendar length of the trial.
func (t TrialResult) Years() int {
	return len(t.CashFlow)
}

// Payback is the first year a cumulative cash flow turns strictly positive.
// When Reached is false, Year holds the last index of the horizon.
type Payback struct {
	Year    int  `json:"-"`
	Reached bool `json:"reached"`
}

// MarshalJSON renders the year as null when the horizon ended without payback.
func (p Payback) MarshalJSON() ([]byte, error) {
	type payload struct {
		Year    *int `json:"year"`
		Reached bool `json:"reached"`
	}
	out := payload{Reached: p.Reached}
	if p.Reached {
		y := p.Year
		out.Year = &y
	}
	return json.Marshal(out)
}

// CampaignContribution is one campaign's mean donors and revenue per calendar year.
type CampaignContribution struct {
	Name       string          `json:"name,omitempty"`
	StartYear  int             `json:"startYear"`
	Donors     []float64       `json:"donors"`
	Revenue    []float64       `json:"revenue"`
	Investment decimal.Decimal `json:"investment"`
}

// AggregateResult is the reduced outcome of a Monte Carlo run.
type AggregateResult struct {
	Trials       int     `json:"trials"`
	Seed         uint64  `json:"seed"`
	DiscountRate float64 `json:"discountRate"`

	MeanCumulativeDiscounted   []float64 `json:"meanCumulativeDiscounted"`
	LowerCumulativeDiscounted  []float64 `json:"lowerCumulativeDiscounted"` // 10th percentile
	UpperCumulativeDiscounted  []float64 `json:"upperCumulativeDiscounted"` // 90th percentile
	MeanCumulativeUndiscounted []float64 `json:"meanCumulativeUndiscounted"`
	MeanYearlyDonors           []float64 `json:"meanYearlyDonors"`
	MeanYearlyRevenue          []float64 `json:"meanYearlyRevenue"`

	MeanNPV          float64         `json:"meanNpv"`
	PositiveNPVShare float64         `json:"positiveNpvShare"`
	TotalInvestment  decimal.Decimal `json:"totalInvestment"`

	DiscountedPayback Payback `json:"discountedPayback"`
	SimplePayback     Payback `json:"simplePayback"`

	Campaigns []CampaignContribution `json:"campaigns,omitempty"`
}

// Years is the calendar length of the result series.
func (r *AggregateResult) Years() int {
	return len(r.MeanCumulativeDiscounted)
}

// TotalRevenue sums the mean yearly revenue over the horizon.
func (r *AggregateResult) TotalRevenue() float64 {
	total := 0.0
	for _, v := range r.MeanYearlyRevenue {
		total += v
	}
	return total
}

// Summary holds the headline money figures of a forecast.
type Summary struct {
	Investment        decimal.Decimal `json:"investment"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	NPV               decimal.Decimal `json:"npv"`
	SimpleROI         decimal.Decimal `json:"simpleRoi"` // percent
	NPVROI            decimal.Decimal `json:"npvRoi"`    // percent
	RevenueMultiple   decimal.Decimal `json:"revenueMultiple"`
	DiscountedPayback Payback         `json:"discountedPayback"`
	SimplePayback     Payback         `json:"simplePayback"`
	PositiveNPVShare  decimal.Decimal `json:"positiveNpvShare"`
}
