package output

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary  = lipgloss.Color("#7D56F4")
	ColorSuccess  = lipgloss.Color("#04B575")
	ColorDanger   = lipgloss.Color("#FF4672")
	ColorMuted    = lipgloss.Color("#626262")
	ColorChartP10 = lipgloss.Color("#FFA500")
	ColorChartP90 = lipgloss.Color("#00BFFF")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(26)

	PositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	NegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
)

// signStyle picks the positive or negative style for v.
func signStyle(v float64) lipgloss.Style {
	if v < 0 {
		return NegativeStyle
	}
	return PositiveStyle
}
