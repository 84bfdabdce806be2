package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Campaigns",
		"Investment",
		"Total Revenue",
		"Net Profit",
		"NPV",
		"NPV ROI %",
		"Discounted Payback Year",
		"Positive NPV Share",
		"NPV Diff from Base",
		"NPV % Change",
		"Revenue Diff from Base",
		"Investment Diff from Base",
		"Winner",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base", compSet.Winner)); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative", compSet.Winner)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType, winner string) []string {
	payback := ""
	if result.DiscountedPayback.Reached {
		payback = strconv.Itoa(result.DiscountedPayback.Year)
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		strconv.Itoa(result.Campaigns),
		result.Investment.StringFixed(2),
		result.TotalRevenue.StringFixed(2),
		result.NetProfit.StringFixed(2),
		result.NPV.StringFixed(2),
		result.NPVROI.StringFixed(2),
		payback,
		result.PositiveNPVShare.StringFixed(4),
		result.NPVDiffFromBase.StringFixed(2),
		result.NPVPctFromBase.StringFixed(2),
		result.RevenueDiffFromBase.StringFixed(2),
		result.InvestmentDiffFromBase.StringFixed(2),
		strconv.FormatBool(winner != "" && winner == result.ScenarioName),
	}
}
