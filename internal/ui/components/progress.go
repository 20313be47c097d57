package components

import (
	"fmt"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

// ProgressBar is a static gradient bar with an optional label and
// percentage. Use Meter for an animated one.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	pct := clamp01(p.Percent)

	var label, suffix string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %3d%%", int(pct*100)))
	}

	barWidth := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), 4)
	bar := progress.New(
		progress.WithWidth(barWidth),
		progress.WithColors(theme.Primary, theme.Secondary),
		progress.WithScaled(true),
		progress.WithoutPercentage(),
	)

	return label + bar.ViewAs(pct) + suffix
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
