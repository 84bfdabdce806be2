package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/donorcast/internal/calculation"
	"github.com/rgehrsitz/donorcast/internal/config"
	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/rgehrsitz/donorcast/internal/output"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "donorcast %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "donorcast",
		Short: "Booth campaign donor forecast CLI",
		Long: `Monte Carlo forecast of donors, revenue and discounted cash flow for
street-fundraising booth campaigns, alone or as a portfolio of campaigns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.Int("trials", calculation.DefaultTrials, "Number of Monte Carlo trials")
	pf.Uint64("seed", 0, "Run seed (default: derived from the clock)")
	pf.Int("workers", 0, "Parallel workers (default: GOMAXPROCS)")
	pf.Float64("discount-rate", calculation.DefaultDiscountRate, "Annual discount rate for NPV")
	pf.StringP("format", "f", "console", "Output format (console, json, csv)")
	pf.Bool("progress", false, "Show a progress bar on stderr")
	pf.Bool("save", false, "Write the report to a file instead of stdout")
	pf.Bool("debug", false, "Enable debug logging")
	pf.String("env-file", ".env", "Environment file with DONORCAST_* settings")

	rootCmd.AddCommand(singleCmd())
	rootCmd.AddCommand(portfolioCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

// runSetup is the engine configuration assembled for one command.
type runSetup struct {
	engine *calculation.Engine
	bar    *progressbar.ProgressBar
}

func (rs runSetup) finish() {
	if rs.bar != nil {
		_ = rs.bar.Finish()
	}
}

// buildEngine layers defaults, plan settings, environment and flags, in that
// order. runs is the number of forecasts the progress bar covers.
func buildEngine(cmd *cobra.Command, plan *domain.PlanSettings, runs int) (runSetup, error) {
	cfg := calculation.DefaultConfig()
	seedSet := false

	if plan != nil {
		config.ApplyPlan(&cfg, *plan)
		seedSet = plan.Seed != nil
	}

	envFile, _ := cmd.Flags().GetString("env-file")
	env, err := config.LoadRunSettings(envFile)
	if err != nil {
		return runSetup{}, err
	}
	env.Apply(&cfg)
	seedSet = seedSet || env.Seed != nil

	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials, _ = flags.GetInt("trials")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
		seedSet = true
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("discount-rate") {
		cfg.DiscountRate, _ = flags.GetFloat64("discount-rate")
	}
	if !seedSet {
		cfg.Seed = config.ClockSeed()
	}

	var rs runSetup
	if show, _ := flags.GetBool("progress"); show && cfg.Trials > 0 {
		rs.bar = progressbar.NewOptions(cfg.Trials*max(runs, 1),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("trials"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		cfg.Progress = rs.bar
	}

	if err := cfg.Validate(); err != nil {
		return runSetup{}, err
	}

	rs.engine = calculation.NewEngine(cfg)
	if debugMode, _ := flags.GetBool("debug"); debugMode {
		rs.engine.SetLogger(simpleCLILogger{})
	}
	return rs, nil
}

// writeReport renders a forecast with the selected formatter.
func writeReport(cmd *cobra.Command, label string, res *domain.AggregateResult) error {
	name, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(name)
	if f == nil {
		return fmt.Errorf("unknown output format %q (valid: %v, aliases: %v)",
			name, output.AvailableFormatterNames(), output.AvailableFormatAliases())
	}

	report := output.NewReport(label, res)
	if save, _ := cmd.Flags().GetBool("save"); save {
		filename, err := output.WriteFormatted(f, report, extensionFor(f.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func extensionFor(format string) string {
	switch format {
	case "json", "csv":
		return format
	}
	return "txt"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
