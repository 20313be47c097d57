package oracle

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/shadowmaster/internal/chat"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

// transcript caches rendered messages for one wrap width.
type transcript struct {
	width    int
	rendered []string
	pending  bool
	renderer *glamour.TermRenderer
}

func (s *OracleScreen) View(width, height int) string {
	cw := min(width-4, 96)

	status := "AI Tactical Mentor • Online"
	statusColor := theme.Success
	if !s.online {
		status = "AI Tactical Mentor • Offline"
		statusColor = theme.Error
	}
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("◈ The Oracle") + "  " +
		lipgloss.NewStyle().Foreground(statusColor).Render(status)

	input := s.input.View(cw)

	vpHeight := max(height-lipgloss.Height(header)-lipgloss.Height(input)-1, 3)
	s.syncViewport(cw, vpHeight)

	body := header + "\n" + s.viewport.View() + "\n" + input
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

// syncViewport re-renders new messages and scrolls to the latest entry only
// when the log grows or the pending line appears or clears. Spinner frames
// refresh the content without moving the scroll position.
func (s *OracleScreen) syncViewport(width, height int) {
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height)

	grew := false
	if width != s.cache.width {
		s.cache = transcript{width: width, renderer: newRenderer(width - 4)}
		grew = true
	}
	msgs := s.session.Messages()
	for i := len(s.cache.rendered); i < len(msgs); i++ {
		s.cache.rendered = append(s.cache.rendered, s.renderMessage(msgs[i], width))
		grew = true
	}

	pending := s.session.Pending()
	flipped := pending != s.cache.pending
	if !grew && !flipped && !pending {
		return
	}
	s.cache.pending = pending

	content := strings.Join(s.cache.rendered, "\n")
	if pending {
		content += "\n" + lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(s.spinner.View()+" Ghostwalker Prime is decrypting...")
	}
	s.viewport.SetContent(content)
	if grew || flipped {
		s.viewport.GotoBottom()
	}
}

func (s *OracleScreen) renderMessage(m chat.Message, width int) string {
	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MaxWidth(width)

	if m.Role == chat.RoleUser {
		text := lipgloss.NewStyle().Foreground(theme.Text).Width(min(lipgloss.Width(m.Text)+2, width*3/4)).Render(m.Text)
		msg := bubble.BorderForeground(theme.Primary).Render(theme.Label.Render("YOU") + "\n" + text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, msg)
	}

	body := m.Text
	if s.cache.renderer != nil {
		if out, err := s.cache.renderer.Render(m.Text); err == nil {
			body = strings.Trim(out, "\n")
		}
	}
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("GHOSTWALKER PRIME")
	return bubble.BorderForeground(theme.Secondary).Render(label + "\n" + body)
}

func newRenderer(wrap int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(wrap, 20)),
	)
	if err != nil {
		return nil
	}
	return r
}
