package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/content"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

// MultiChoice renders a question's options and tracks a keyboard cursor.
// Which option is selected, and whether the answer has been judged, is owned
// by the caller and passed to View.
type MultiChoice struct {
	Options []content.Option
	Cursor  int
}

// NewMultiChoice creates a selector over opts with the cursor on the first
// option.
func NewMultiChoice(opts []content.Option) MultiChoice {
	return MultiChoice{Options: opts}
}

// Current returns the option under the cursor.
func (m MultiChoice) Current() (content.Option, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Options) {
		return content.Option{}, false
	}
	return m.Options[m.Cursor], true
}

// Update moves the cursor. Letter keys jump directly to an option and
// report it through the second return value.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	default:
		if len(k) == 1 && k[0] >= 'a' && int(k[0]-'a') < len(m.Options) {
			m.Cursor = int(k[0] - 'a')
			return m, true
		}
	}
	return m, false
}

// View renders the options. selected is the chosen option id; once revealed
// the options are locked and the chosen one is colored by correctness.
func (m MultiChoice) View(selected string, revealed bool, width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := string(rune('A' + i))
		marker := "○"
		if opt.ID == selected {
			marker = "●"
		}
		prefix := "  "
		if i == m.Cursor && !revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt.Text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case revealed && opt.ID == selected && opt.Correct:
			style = theme.Correct
		case revealed && opt.ID == selected:
			style = theme.Incorrect
		case revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextMuted)
		case opt.ID == selected:
			style = theme.Selected
		case i == m.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary)
		}
		b.WriteString(style.Width(width).Render(line) + "\n")
	}
	return b.String()
}
