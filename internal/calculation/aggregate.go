package calculation

import (
	"context"
	"sync"

	"github.com/rgehrsitz/donorcast/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	lowerBandPercentile = 0.10
	upperBandPercentile = 0.90
)

// trialOutcome keeps what the reduction needs from one trial.
type trialOutcome struct {
	npv          float64
	cumDisc      []float64
	cumUndisc    []float64
	donors       []float64
	revenue      []float64
	campDonors   [][]float64
	campRevenues [][]float64
}

type trialFunc func(s *Sampler) domain.TrialResult

// runTrials executes every trial on a bounded pool. Each trial owns its
// sampler and its slot in the returned slice, so the output does not depend on
// scheduling. A cancelled context discards all work.
func (e *Engine) runTrials(ctx context.Context, run trialFunc) ([]trialOutcome, error) {
	cfg := e.config
	outcomes := make([]trialOutcome, cfg.Trials)

	var progressFailed sync.Once
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())

	for i := range cfg.Trials {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := NewSampler(cfg.Seed, i, cfg.Empirical)
			t := run(s)
			a := AnalyzeCashFlows(t.CashFlow, cfg.DiscountRate)

			o := trialOutcome{
				npv:          a.NPV,
				cumDisc:      a.CumulativeDiscounted,
				cumUndisc:    a.CumulativeUndiscounted,
				donors:       intsToFloats(t.Donors),
				revenue:      t.Revenue,
				campDonors:   make([][]float64, len(t.Campaigns)),
				campRevenues: make([][]float64, len(t.Campaigns)),
			}
			for c, ct := range t.Campaigns {
				o.campDonors[c] = intsToFloats(ct.Donors)
				o.campRevenues[c] = ct.Revenue
			}
			outcomes[i] = o

			if cfg.Progress != nil {
				if err := cfg.Progress.Add(1); err != nil {
					progressFailed.Do(func() { e.Logger.Debugf("progress reporter failed: %v", err) })
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// aggregate runs the trials and reduces them to means and percentile bands.
func (e *Engine) aggregate(ctx context.Context, years, campaigns int, run trialFunc) (*domain.AggregateResult, error) {
	outcomes, err := e.runTrials(ctx, run)
	if err != nil {
		e.Logger.Warnf("run abandoned: %v", err)
		return nil, err
	}

	n := len(outcomes)
	cumDisc := make([][]float64, n)
	cumUndisc := make([][]float64, n)
	donors := make([][]float64, n)
	revenue := make([][]float64, n)

	npvSum := 0.0
	positive := 0
	for i, o := range outcomes {
		cumDisc[i] = o.cumDisc
		cumUndisc[i] = o.cumUndisc
		donors[i] = o.donors
		revenue[i] = o.revenue
		npvSum += o.npv
		if o.npv > 0 {
			positive++
		}
	}

	res := &domain.AggregateResult{
		Trials:                     n,
		Seed:                       e.config.Seed,
		DiscountRate:               e.config.DiscountRate,
		MeanCumulativeDiscounted:   columnMeans(cumDisc, years),
		LowerCumulativeDiscounted:  columnPercentiles(cumDisc, years, lowerBandPercentile),
		UpperCumulativeDiscounted:  columnPercentiles(cumDisc, years, upperBandPercentile),
		MeanCumulativeUndiscounted: columnMeans(cumUndisc, years),
		MeanYearlyDonors:           columnMeans(donors, years),
		MeanYearlyRevenue:          columnMeans(revenue, years),
		MeanNPV:                    npvSum / float64(n),
		PositiveNPVShare:           float64(positive) / float64(n),
		Campaigns:                  make([]domain.CampaignContribution, campaigns),
	}
	res.DiscountedPayback = PaybackYear(res.MeanCumulativeDiscounted)
	res.SimplePayback = PaybackYear(res.MeanCumulativeUndiscounted)

	perCampaign := make([][]float64, n)
	for c := range campaigns {
		for i, o := range outcomes {
			perCampaign[i] = o.campDonors[c]
		}
		meanDonors := columnMeans(perCampaign, years)
		for i, o := range outcomes {
			perCampaign[i] = o.campRevenues[c]
		}
		res.Campaigns[c] = domain.CampaignContribution{
			Donors:  meanDonors,
			Revenue: columnMeans(perCampaign, years),
		}
	}
	return res, nil
}

// emptyResult is the forecast of a portfolio without campaigns.
func (e *Engine) emptyResult(years int) *domain.AggregateResult {
	res := &domain.AggregateResult{
		Trials:                     e.config.Trials,
		Seed:                       e.config.Seed,
		DiscountRate:               e.config.DiscountRate,
		MeanCumulativeDiscounted:   make([]float64, years),
		LowerCumulativeDiscounted:  make([]float64, years),
		UpperCumulativeDiscounted:  make([]float64, years),
		MeanCumulativeUndiscounted: make([]float64, years),
		MeanYearlyDonors:           make([]float64, years),
		MeanYearlyRevenue:          make([]float64, years),
		Campaigns:                  []domain.CampaignContribution{},
	}
	res.DiscountedPayback = PaybackYear(res.MeanCumulativeDiscounted)
	res.SimplePayback = PaybackYear(res.MeanCumulativeUndiscounted)
	return res
}
