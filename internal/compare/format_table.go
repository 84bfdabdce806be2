package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/donorcast/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("CAMPAIGN SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 90) + "\n")
	if compSet.PlanName != "" {
		sb.WriteString(fmt.Sprintf("Plan: %s\n", compSet.PlanName))
	}
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	sb.WriteString(fmt.Sprintf("Trials: %d  Seed: %d\n", compSet.Trials, compSet.Seed))
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Investment",
		numWidth, "Revenue",
		numWidth, "NPV",
		numWidth, "Payback",
		numWidth, "NPV > 0"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 90) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 90) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			sb.WriteString(fmt.Sprintf("  NPV:         %sCHF %s (%s%%)\n",
				tf.deltaSymbol(alt.NPVDiffFromBase),
				tf.formatDecimal(alt.NPVDiffFromBase),
				alt.NPVPctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Revenue:     %sCHF %s\n",
				tf.deltaSymbol(alt.RevenueDiffFromBase),
				tf.formatDecimal(alt.RevenueDiffFromBase)))
			if !alt.InvestmentDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Investment:  %sCHF %s\n",
					tf.deltaSymbol(alt.InvestmentDiffFromBase),
					tf.formatDecimal(alt.InvestmentDiffFromBase)))
			}
		}
		sb.WriteString("\n")
	}

	if compSet.Winner != "" {
		sb.WriteString(fmt.Sprintf("Winner: %s\n", compSet.Winner))
	} else {
		sb.WriteString("Winner: none (NPVs within 10%)\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatDecimal(result.Investment),
		numWidth, tf.formatDecimal(result.TotalRevenue),
		numWidth, tf.formatDecimal(result.NPV),
		numWidth, formatPayback(result.DiscountedPayback),
		numWidth, result.PositiveNPVShare.Mul(decimal.NewFromInt(100)).StringFixed(1)+"%")
}

func formatPayback(p domain.Payback) string {
	if !p.Reached {
		return "never"
	}
	return fmt.Sprintf("year %d", p.Year)
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + for positive deltas; negatives carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		npvChange := "="
		if !alt.NPVDiffFromBase.IsZero() {
			npvChange = tf.deltaSymbol(alt.NPVDiffFromBase) + tf.formatDecimal(alt.NPVDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, npvChange))
	}

	return sb.String()
}
