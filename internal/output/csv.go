package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVFormatter writes one row per calendar year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	if r == nil || r.Result == nil {
		return nil, fmt.Errorf("csv: empty report")
	}
	res := r.Result

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year",
		"MeanDonors",
		"MeanRevenue",
		"MeanCumulativeDiscounted",
		"P10CumulativeDiscounted",
		"P90CumulativeDiscounted",
		"MeanCumulativeUndiscounted",
	}
	for i, cc := range res.Campaigns {
		name := cc.Name
		if name == "" {
			name = strconv.Itoa(i + 1)
		}
		header = append(header, "Revenue "+name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for y := 0; y < res.Years(); y++ {
		row := []string{
			strconv.Itoa(y),
			formatFloat(res.MeanYearlyDonors[y]),
			formatFloat(res.MeanYearlyRevenue[y]),
			formatFloat(res.MeanCumulativeDiscounted[y]),
			formatFloat(res.LowerCumulativeDiscounted[y]),
			formatFloat(res.UpperCumulativeDiscounted[y]),
			formatFloat(res.MeanCumulativeUndiscounted[y]),
		}
		for _, cc := range res.Campaigns {
			row = append(row, formatFloat(cc.Revenue[y]))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
