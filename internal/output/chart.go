package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart draws one or more series on a character grid
type ASCIIChart struct {
	Title  string
	Series []*DataSeries
	Width  int
	Height int
}

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:  title,
		Width:  60,
		Height: 12,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the chart, or a note when there is nothing to plot
func (c *ASCIIChart) Render() string {
	minVal, maxVal, ok := c.bounds()
	if !ok {
		return MutedStyle.Render("No data to display")
	}

	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(TitleStyle.Render(c.Title))
		sb.WriteString("\n\n")
	}
	sb.WriteString(c.renderGrid(minVal, maxVal))
	if len(c.Series) > 1 {
		sb.WriteString("\n")
		sb.WriteString(c.renderLegend())
	}
	return sb.String()
}

// bounds finds the padded value range over all series
func (c *ASCIIChart) bounds() (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0, false
	}
	if hi == lo {
		hi, lo = hi+1, lo-1
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad, true
}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	const yAxisWidth = 10
	chartWidth := c.Width - yAxisWidth

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", chartWidth))
	}

	row := func(v float64) int {
		return c.Height - 1 - int((v-minVal)/(maxVal-minVal)*float64(c.Height-1))
	}
	col := func(i, n int) int {
		if n <= 1 {
			return 0
		}
		return int(float64(i) / float64(n-1) * float64(chartWidth-1))
	}

	for idx, s := range c.Series {
		ch := seriesChar(idx)
		for i, p := range s.Points {
			x, y := col(i, len(s.Points)), row(p)
			if i > 0 {
				drawLine(grid, col(i-1, len(s.Points)), row(s.Points[i-1]), x, y, ch)
			}
			if y >= 0 && y < c.Height && x >= 0 && x < chartWidth {
				grid[y][x] = ch
			}
		}
	}

	// Zero line
	if minVal < 0 && maxVal > 0 {
		zy := row(0)
		for x := range grid[zy] {
			if grid[zy][x] == ' ' {
				grid[zy][x] = '·'
			}
		}
	}

	axis := lipgloss.NewStyle().Foreground(ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	valueRange := maxVal - minVal

	var sb strings.Builder
	for i, r := range grid {
		v := maxVal - float64(i)/float64(c.Height-1)*valueRange
		sb.WriteString(axis.Render(formatChartValue(v)))
		sb.WriteString(" │ ")
		sb.WriteString(string(r))
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", yAxisWidth))
	sb.WriteString(" └")
	sb.WriteString(strings.Repeat("─", chartWidth))
	sb.WriteString("\n")
	return sb.String()
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	return MutedStyle.Render("Legend: ") + strings.Join(items, "  ")
}

func seriesChar(index int) rune {
	chars := []rune{'●', '▼', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine connects two points using Bresenham's algorithm
func drawLine(grid [][]rune, x0, y0, x1, y1 int, ch rune) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) && grid[y][x] == ' ' {
			grid[y][x] = ch
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// formatChartValue formats a value for the Y axis
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("%.0fK", value/1000)
	}
	return fmt.Sprintf("%.0f", value)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
