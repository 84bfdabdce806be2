package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/donorcast/internal/calculation"
	"github.com/rgehrsitz/donorcast/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareScenarios forecasts the base scenario and each alternative with the
// same settings and relates them to the base. With no alternatives named, all
// other scenarios of the plan are compared.
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	plan *domain.Plan,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {

	base, ok := plan.FindScenario(baseScenarioName)
	if !ok {
		return nil, fmt.Errorf("base scenario %s not found", baseScenarioName)
	}

	if len(alternativeScenarioNames) == 0 {
		for _, sc := range plan.Scenarios {
			if sc.Name != baseScenarioName {
				alternativeScenarioNames = append(alternativeScenarioNames, sc.Name)
			}
		}
	}

	baseResult, err := ce.run(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		alt, ok := plan.FindScenario(altName)
		if !ok {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}

		altResult, err := ce.run(ctx, alt)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", altName, err)
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	cfg := ce.CalcEngine.Config()
	compSet := &ComparisonSet{
		PlanName:           plan.Name,
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		Trials:             cfg.Trials,
		Seed:               cfg.Seed,
	}
	compSet.Winner = DetermineWinner(compSet.All())

	return compSet, nil
}

func (ce *CompareEngine) run(ctx context.Context, sc *domain.Scenario) (ComparisonResult, error) {
	res, err := ce.CalcEngine.RunPortfolio(ctx, sc.Portfolio())
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(sc, res), nil
}
