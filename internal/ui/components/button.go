package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

// Button is a labelled action. Buttons do not handle keys themselves; the
// owning screen binds a key and renders the button so the hint and the
// enabled state stay in sync.
type Button struct {
	Label    string
	Key      string
	Variant  theme.ButtonVariant
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label, key string, variant theme.ButtonVariant) Button {
	return Button{
		Label:   label,
		Key:     key,
		Variant: variant,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}

	if b.Disabled {
		return lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(label)
	}
	return theme.ButtonColor(b.Variant).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(label)
}

// ButtonRow lays buttons out left to right.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, 2*len(buttons))
	for i, b := range buttons {
		if i > 0 {
			views = append(views, " ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
