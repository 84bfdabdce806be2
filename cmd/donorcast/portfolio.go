package main

import (
	"fmt"

	"github.com/rgehrsitz/donorcast/internal/config"
	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/spf13/cobra"
)

func loadPlan(path string) (*domain.Plan, error) {
	return config.NewInputParser().LoadFromFile(path)
}

func portfolioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio [plan-file]",
		Short: "Forecast a portfolio of campaigns from a plan file",
		Long: `Forecast one scenario of a plan file as a portfolio of campaigns with
their own start years on a shared calendar.

Examples:
  donorcast portfolio plan.yaml
  donorcast portfolio plan.yaml --scenario Jährlich --format csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("scenario")
			sc := &plan.Scenarios[0]
			if name != "" {
				var ok bool
				if sc, ok = plan.FindScenario(name); !ok {
					return fmt.Errorf("scenario %s not found in %s", name, args[0])
				}
			}

			rs, err := buildEngine(cmd, &plan.Settings, 1)
			if err != nil {
				return err
			}
			res, err := rs.engine.RunPortfolio(cmd.Context(), sc.Portfolio())
			rs.finish()
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc.Name, err)
			}

			label := sc.Name
			if plan.Name != "" {
				label = plan.Name + " / " + sc.Name
			}
			return writeReport(cmd, label, res)
		},
	}

	cmd.Flags().String("scenario", "", "Scenario to forecast (default: the first)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			campaigns := 0
			for _, sc := range plan.Scenarios {
				campaigns += len(sc.Portfolio())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan file %s is valid (%d scenarios, %d campaigns)\n",
				args[0], len(plan.Scenarios), campaigns)
			return nil
		},
	}
}
