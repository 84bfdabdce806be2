package calculation

import "slices"

// percentile uses linear interpolation between closest ranks, the same rule
// numpy applies by default. values is sorted in place.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	slices.Sort(values)

	index := p * float64(len(values)-1)
	lo := int(index)
	if lo >= len(values)-1 {
		return values[len(values)-1]
	}
	frac := index - float64(lo)
	return values[lo] + (values[lo+1]-values[lo])*frac
}

// columnMeans averages rows element-wise. Every row must have width entries.
func columnMeans(rows [][]float64, width int) []float64 {
	out := make([]float64, width)
	if len(rows) == 0 {
		return out
	}
	for _, row := range rows {
		for j, v := range row {
			out[j] += v
		}
	}
	n := float64(len(rows))
	for j := range out {
		out[j] /= n
	}
	return out
}

// columnPercentiles computes the p-th percentile of every column.
func columnPercentiles(rows [][]float64, width int, p float64) []float64 {
	out := make([]float64, width)
	col := make([]float64, len(rows))
	for j := range width {
		for i, row := range rows {
			col[i] = row[j]
		}
		out[j] = percentile(col, p)
	}
	return out
}

func intsToFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
