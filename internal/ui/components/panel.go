package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked panels so
// they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

// Center places content in the middle of the available area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// CardInner is the width left for content inside a Card of width cw.
func CardInner(cw int) int {
	return max(cw-theme.Card.GetHorizontalFrameSize(), 1)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int, active bool) string {
	style := theme.Card
	if active {
		style = theme.CardActive
	}
	return style.Width(cw).Render(content)
}

// Section renders an uppercase caption above body.
func Section(caption, body string) string {
	return theme.Label.Render(caption) + "\n" + body
}

// Badge renders a short inline chip in color c.
func Badge(text string, style lipgloss.Style) string {
	return style.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(text)
}
