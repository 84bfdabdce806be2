package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rgehrsitz/donorcast/internal/domain"
	"gopkg.in/yaml.v3"
)

// maxRepeatYears bounds recurring campaigns to a sensible planning window.
const maxRepeatYears = 50

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates plan data
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan validates the loaded plan
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if len(plan.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios provided", domain.ErrInvalidParameter)
	}

	if err := ip.validateSettings(&plan.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	seen := make(map[string]bool, len(plan.Scenarios))
	for i := range plan.Scenarios {
		sc := &plan.Scenarios[i]
		if sc.Name == "" {
			return fmt.Errorf("%w: scenario %d: name is required", domain.ErrInvalidParameter, i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("%w: scenario %d: duplicate name %q", domain.ErrInvalidParameter, i, sc.Name)
		}
		seen[sc.Name] = true

		if err := ip.validateScenario(sc); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, sc.Name, err)
		}
	}
	return nil
}

// validateScenario validates a single scenario. An empty campaign list is
// allowed and forecasts to zero.
func (ip *InputParser) validateScenario(sc *domain.Scenario) error {
	if sc.RepeatYears < 0 || sc.RepeatYears > maxRepeatYears {
		return fmt.Errorf("%w: repeat_years must be between 0 and %d", domain.ErrInvalidParameter, maxRepeatYears)
	}
	if sc.RepeatYears > 0 && len(sc.Campaigns) != 1 {
		return fmt.Errorf("%w: repeat_years needs exactly one campaign, got %d", domain.ErrInvalidParameter, len(sc.Campaigns))
	}

	for i, c := range sc.Campaigns {
		if err := c.Validate(); err != nil {
			name := c.Name
			if name == "" {
				name = "unnamed"
			}
			return fmt.Errorf("campaign %d (%s): %w", i, name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateSettings(s *domain.PlanSettings) error {
	var errs []error
	if s.Trials != nil && *s.Trials <= 0 {
		errs = append(errs, fmt.Errorf("%w: trials must be positive", domain.ErrInvalidParameter))
	}
	if s.Workers != nil && *s.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers cannot be negative", domain.ErrInvalidParameter))
	}
	if s.DiscountRate != nil && !(*s.DiscountRate > -1 && *s.DiscountRate <= 1) {
		errs = append(errs, fmt.Errorf("%w: discount_rate must be in (-1, 1]", domain.ErrInvalidParameter))
	}
	return errors.Join(errs...)
}

// SavePlan writes a plan as YAML
func SavePlan(plan *domain.Plan, filename string) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
