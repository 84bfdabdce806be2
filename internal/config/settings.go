package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rgehrsitz/donorcast/internal/calculation"
	"github.com/rgehrsitz/donorcast/internal/domain"
)

// RunSettings are the run-wide overrides taken from the environment.
type RunSettings struct {
	Trials       *int     `env:"DONORCAST_TRIALS"`
	Seed         *uint64  `env:"DONORCAST_SEED"`
	Workers      *int     `env:"DONORCAST_WORKERS"`
	DiscountRate *float64 `env:"DONORCAST_DISCOUNT_RATE"`
}

// LoadRunSettings reads overrides from the environment. When envFile is set
// and exists, it is loaded first without replacing variables already set.
func LoadRunSettings(envFile string) (RunSettings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return RunSettings{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var s RunSettings
	if err := env.Parse(&s); err != nil {
		return RunSettings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// ApplyPlan copies the plan's settings onto cfg.
func ApplyPlan(cfg *calculation.Config, s domain.PlanSettings) {
	apply(cfg, s.Trials, s.Seed, s.Workers, s.DiscountRate)
}

// Apply copies the environment overrides onto cfg.
func (s RunSettings) Apply(cfg *calculation.Config) {
	apply(cfg, s.Trials, s.Seed, s.Workers, s.DiscountRate)
}

func apply(cfg *calculation.Config, trials *int, seed *uint64, workers *int, rate *float64) {
	if trials != nil {
		cfg.Trials = *trials
	}
	if seed != nil {
		cfg.Seed = *seed
	}
	if workers != nil {
		cfg.Workers = *workers
	}
	if rate != nil {
		cfg.DiscountRate = *rate
	}
}

// ClockSeed derives a run seed from the current time.
func ClockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
