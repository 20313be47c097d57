package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 32
)

// Brand is the product name shown in the header.
const Brand = "ShadowMaster Hub"

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Viewport compromised.\n\nResize to at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the brand, the screen title and the operative's
// streak and XP badges.
func RenderHeader(title string, xp, streak int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(" " + Brand)

	center := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(strings.ToUpper(title))

	right := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("ϟ %d", streak)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("⬡ %d XP", xp))

	content := spread(left, center, right, max(width-4, 0))

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread places center in the middle of inner and pins left and right to
// the edges.
func spread(left, center, right string, inner int) string {
	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	leftGap := max((inner-centerLen)/2-leftLen, 1)
	rightGap := max(inner-leftLen-leftGap-centerLen-rightLen, 1)

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderTabBar renders the bottom navigation as a single row. active < 0
// highlights nothing (an overlay is showing).
func RenderTabBar(labels []string, active int, width int) string {
	cell := max(width/max(len(labels), 1), 1)
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		text := fmt.Sprintf("%d %s", i+1, l)
		style := lipgloss.NewStyle().Width(cell).Align(lipgloss.Center).Foreground(theme.TextMuted)
		if i == active {
			style = style.Foreground(theme.Primary).Bold(true)
			text = "▴ " + text
		}
		parts = append(parts, style.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderFooter frames a rendered help line.
func RenderFooter(help string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(" " + help)
}

// RenderFrame composes header, content and footer, sizing the content
// area to whatever height remains.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

// ContentHeight returns the rows left for screen content once header and
// footer are placed.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}
