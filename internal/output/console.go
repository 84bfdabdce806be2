package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/donorcast/internal/domain"
	"golang.org/x/text/language"
)

// ConsoleFormatter renders a styled report for terminals.
type ConsoleFormatter struct {
	Language  language.Tag // zero value uses DefaultLanguage
	HideChart bool
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	if r == nil || r.Result == nil {
		return nil, fmt.Errorf("console: empty report")
	}
	tag := c.Language
	if tag == language.Und {
		tag = DefaultLanguage
	}
	m := NewMoney(tag)
	res, s := r.Result, r.Summary

	var buf bytes.Buffer
	title := "DONOR CAMPAIGN FORECAST"
	if r.Label != "" {
		title += ": " + r.Label
	}
	fmt.Fprintln(&buf, TitleStyle.Render(title))
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, MutedStyle.Render(fmt.Sprintf("run %s  trials %d  seed %d  discount rate %.2f%%",
		r.RunID, res.Trials, res.Seed, res.DiscountRate*100)))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, SectionStyle.Render("SUMMARY"))
	line := func(label, value string) {
		fmt.Fprintf(&buf, "%s %s\n", LabelStyle.Render(label), value)
	}
	line("Investment", m.Decimal(s.Investment))
	line("Total revenue", m.Decimal(s.TotalRevenue))
	line("Net profit", signStyle(s.NetProfit.InexactFloat64()).Render(m.Decimal(s.NetProfit)))
	line("NPV (mean)", signStyle(s.NPV.InexactFloat64()).Render(m.Decimal(s.NPV)))
	line("Simple ROI", FormatPercentage(s.SimpleROI))
	line("NPV ROI", FormatPercentage(s.NPVROI))
	line("Revenue multiple", s.RevenueMultiple.StringFixed(2)+"x")
	line("Trials with NPV > 0", FormatPercentage(s.PositiveNPVShare.Mul(hundred)))
	line("Discounted payback", paybackText(s.DiscountedPayback))
	line("Simple payback", paybackText(s.SimplePayback))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, SectionStyle.Render("YEARLY FORECAST"))
	fmt.Fprintf(&buf, "%4s %10s %16s %16s %16s %16s\n",
		"Year", "Donors", "Revenue", "Cum. NPV P10", "Cum. NPV mean", "Cum. NPV P90")
	fmt.Fprintln(&buf, strings.Repeat("-", 83))
	for y := 0; y < res.Years(); y++ {
		fmt.Fprintf(&buf, "%4d %10s %16s %16s %16s %16s\n",
			y,
			m.Number(res.MeanYearlyDonors[y]),
			m.Amount(res.MeanYearlyRevenue[y]),
			m.Amount(res.LowerCumulativeDiscounted[y]),
			m.Amount(res.MeanCumulativeDiscounted[y]),
			m.Amount(res.UpperCumulativeDiscounted[y]))
	}

	if len(res.Campaigns) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, SectionStyle.Render("CAMPAIGNS"))
		for i, cc := range res.Campaigns {
			name := cc.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			fmt.Fprintf(&buf, "%s start year %d, investment %s, revenue %s\n",
				LabelStyle.Render(name), cc.StartYear, m.Decimal(cc.Investment), m.Amount(sum(cc.Revenue)))
		}
	}

	if !c.HideChart && res.Years() > 1 {
		fmt.Fprintln(&buf)
		chart := NewASCIIChart("CUMULATIVE DISCOUNTED CASH FLOW").
			AddSeries("mean", res.MeanCumulativeDiscounted, ColorPrimary).
			AddSeries("P10", res.LowerCumulativeDiscounted, ColorChartP10).
			AddSeries("P90", res.UpperCumulativeDiscounted, ColorChartP90)
		fmt.Fprintln(&buf, chart.Render())
	}

	return buf.Bytes(), nil
}

func paybackText(p domain.Payback) string {
	if !p.Reached {
		return NegativeStyle.Render("not reached")
	}
	return fmt.Sprintf("year %d", p.Year)
}

func sum(v []float64) float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}
	return total
}
