package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/donorcast/internal/compare"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [plan-file]",
		Short: "Compare the scenarios of a plan file",
		Long: `Forecast each scenario of a plan with the same settings and compare them
against a base scenario. A scenario wins when its NPV exceeds every other
scenario's NPV by more than 10%.

Examples:
  donorcast compare plan.yaml
  donorcast compare plan.yaml --base Basis --with Jährlich --format csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}

			baseScenarioName, _ := cmd.Flags().GetString("base")
			if baseScenarioName == "" {
				baseScenarioName = plan.Scenarios[0].Name
			}
			withStr, _ := cmd.Flags().GetString("with")
			alternatives := parseList(withStr)

			runs := len(alternatives) + 1
			if len(alternatives) == 0 {
				runs = len(plan.Scenarios)
			}
			rs, err := buildEngine(cmd, &plan.Settings, runs)
			if err != nil {
				return err
			}

			compareEngine := compare.NewCompareEngine(rs.engine)
			comparisonSet, err := compareEngine.CompareScenarios(cmd.Context(), plan, baseScenarioName, alternatives)
			rs.finish()
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			out := cmd.OutOrStdout()
			switch strings.ToLower(outputFormat) {
			case "csv":
				formatter := &compare.CSVFormatter{}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, text)

			case "json":
				formatter := &compare.JSONFormatter{Pretty: true}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, text)

			case "compact":
				formatter := &compare.TableFormatter{}
				fmt.Fprintln(out, formatter.FormatCompact(comparisonSet))

			case "table", "console", "":
				formatter := &compare.TableFormatter{}
				fmt.Fprint(out, formatter.Format(comparisonSet))

			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().String("base", "", "Base scenario name (default: the first scenario)")
	cmd.Flags().String("with", "", "Comma-separated scenarios to compare (default: all others)")
	return cmd
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
