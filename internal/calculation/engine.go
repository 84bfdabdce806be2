package calculation

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/rgehrsitz/donorcast/internal/domain"
)

const (
	// DefaultTrials is the number of Monte Carlo trials per run.
	DefaultTrials = 750
	// DefaultDiscountRate is the annual rate used for NPV.
	DefaultDiscountRate = 0.03
	// DefaultHorizonYears is the number of years simulated after acquisition.
	DefaultHorizonYears = 10
)

// ProgressReporter is notified as trials complete. Implementations must be
// safe for concurrent use.
type ProgressReporter interface {
	Add(n int) error
}

// Config holds the run-wide settings of the forecast engine.
type Config struct {
	Trials       int
	DiscountRate float64
	HorizonYears int
	Seed         uint64
	Workers      int // 0 means GOMAXPROCS
	Empirical    domain.EmpiricalTable
	Progress     ProgressReporter
}

// DefaultConfig returns the standard settings with seed 0.
func DefaultConfig() Config {
	return Config{
		Trials:       DefaultTrials,
		DiscountRate: DefaultDiscountRate,
		HorizonYears: DefaultHorizonYears,
		Empirical:    domain.DefaultEmpiricalTable(),
	}
}

// Validate checks that the settings describe a runnable simulation.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", domain.ErrInvalidParameter, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative, got %d", domain.ErrInvalidParameter, c.Workers)
	}
	if c.HorizonYears <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", domain.ErrInvalidParameter, c.HorizonYears)
	}
	if math.IsNaN(c.DiscountRate) || math.IsInf(c.DiscountRate, 0) || c.DiscountRate <= -1 {
		return fmt.Errorf("%w: discount rate must be greater than -100%%, got %v", domain.ErrInvalidParameter, c.DiscountRate)
	}
	if len(c.Empirical.Retention) == 0 {
		return fmt.Errorf("%w: empirical retention table is empty", domain.ErrInvalidParameter)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Engine runs Monte Carlo forecasts for campaigns and portfolios.
type Engine struct {
	config Config
	Logger Logger
}

// NewEngine creates an engine with the given settings.
func NewEngine(cfg Config) *Engine {
	return &Engine{config: cfg, Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Config returns the engine settings.
func (e *Engine) Config() Config {
	return e.config
}

// RunSingleCampaign forecasts one campaign over the fixed horizon. The
// campaign's start year is ignored.
func (e *Engine) RunSingleCampaign(ctx context.Context, p domain.CampaignParameters) (*domain.AggregateResult, error) {
	if err := e.config.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	e.Logger.Infof("single campaign: trials=%d workers=%d seed=%d booth_days=%v",
		e.config.Trials, e.config.workers(), e.config.Seed, p.BoothDays)

	horizon := e.config.HorizonYears
	res, err := e.aggregate(ctx, horizon+1, 1, func(s *Sampler) domain.TrialResult {
		return RunCampaignTrial(s, p, horizon)
	})
	if err != nil {
		return nil, err
	}
	res.TotalInvestment = p.Investment()
	res.Campaigns[0].Name = p.Name
	res.Campaigns[0].Investment = res.TotalInvestment

	e.Logger.Infof("single campaign done: mean_npv=%.2f", res.MeanNPV)
	return res, nil
}

// RunPortfolio forecasts a set of campaigns with independent start years on a
// shared calendar. An empty portfolio yields an all-zero result.
func (e *Engine) RunPortfolio(ctx context.Context, campaigns []domain.CampaignParameters) (*domain.AggregateResult, error) {
	if err := e.config.Validate(); err != nil {
		return nil, err
	}
	for i, c := range campaigns {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("campaign %d: %w", i, err)
		}
	}

	horizon := e.config.HorizonYears
	if len(campaigns) == 0 {
		e.Logger.Warnf("portfolio is empty, returning zero forecast")
		return e.emptyResult(CalendarYears(nil, horizon)), nil
	}

	years := CalendarYears(campaigns, horizon)
	e.Logger.Infof("portfolio: campaigns=%d years=%d trials=%d workers=%d seed=%d",
		len(campaigns), years, e.config.Trials, e.config.workers(), e.config.Seed)

	res, err := e.aggregate(ctx, years, len(campaigns), func(s *Sampler) domain.TrialResult {
		return RunPortfolioTrial(s, campaigns, horizon)
	})
	if err != nil {
		return nil, err
	}
	res.TotalInvestment = domain.TotalInvestment(campaigns)
	for i, c := range campaigns {
		res.Campaigns[i].Name = c.Name
		res.Campaigns[i].StartYear = c.StartYear
		res.Campaigns[i].Investment = c.Investment()
	}

	e.Logger.Infof("portfolio done: mean_npv=%.2f", res.MeanNPV)
	return res, nil
}
