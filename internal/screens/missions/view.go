package missions

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/mission"
	"github.com/abhisek/shadowmaster/internal/ui/components"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

func (s *MissionsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.flow.View() {
	case mission.ViewSuccess:
		body = renderSuccess(cw)
	case mission.ViewMap:
		body = s.renderTabs() + "\n\n" + s.renderMap(cw)
	default:
		body = s.renderTabs() + "\n\n" + s.renderBriefing(cw)
	}
	return components.Center(body, width, height)
}

func (s *MissionsScreen) renderTabs() string {
	tab := func(label string, active bool) string {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.TextMuted)
		if active {
			style = style.Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
		}
		if !s.flow.CanSwitchView() && !active {
			style = style.Faint(true)
		}
		return style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab("Briefing", s.flow.View() == mission.ViewBriefing),
		" ",
		tab("Sim Map", s.flow.View() == mission.ViewMap),
	)
}

func (s *MissionsScreen) renderBriefing(cw int) string {
	m := s.flow.Briefing()

	codename := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(m.Codename)
	difficulty := components.Badge("DIFFICULTY: "+strings.ToUpper(m.Difficulty), lipgloss.NewStyle().Foreground(theme.Accent))

	field := func(caption, value string) string {
		return theme.Label.Render(caption) + "\n" + theme.Body.Width(components.CardInner(cw)).Render(value)
	}

	lines := []string{
		codename,
		difficulty,
		field("Primary Objective", m.Objective),
		field("Threat Model", m.Threat),
	}
	if _, generated := s.flow.Generated(); generated && m.Tactics != "" {
		lines = append(lines, field("Tactical Advice", m.Tactics))
	}
	card := components.Card(strings.Join(lines, "\n\n"), cw, true)

	inspect := components.NewButton("Inspect Route", "enter", theme.ButtonPrimary)

	gen := components.NewButton("Generate New Contract ✨", "g", theme.ButtonMagic)
	gen.Disabled = !s.flow.CanGenerate()
	if s.flow.Generating() {
		gen.Label = s.spinner.View() + " Decrypting contract..."
	}

	powered := theme.Hint.Render("Powered by Gemini Operational Intelligence")
	return card + "\n" + components.ButtonRow(inspect, gen) + "\n" + powered
}

func (s *MissionsScreen) renderMap(cw int) string {
	route := lipgloss.NewStyle().Foreground(theme.Primary)
	guard := lipgloss.NewStyle().Foreground(theme.Error)
	target := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)

	grid := []string{
		"┌──────────────┬───────────┐",
		"│ " + route.Render("◆ ENTRY") + "      │  " + guard.Render("◉ CAM") + "    │",
		"│   " + route.Render("╲") + "          │           │",
		"│    " + route.Render("╲ ─ ─ ─ ─ ─ ─ ─ ╮") + "     │",
		"├──────────────┤       " + route.Render("│") + "   │",
		"│  " + guard.Render("◉ GUARD") + "     │       " + route.Render("▼") + "   │",
		"│              │  " + target.Render("★ VAULT") + "  │",
		"└──────────────┴───────────┘",
	}
	mapView := lipgloss.NewStyle().Width(components.CardInner(cw)).Align(lipgloss.Center).Render(strings.Join(grid, "\n"))

	var footer string
	if s.flow.Running() {
		footer = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Blink(true).
			Render(s.spinner.View() + " EXECUTING PROTOCOLS...")
		launch := components.NewButton("Running Simulation...", "", theme.ButtonPrimary)
		launch.Disabled = true
		footer += "\n" + launch.View()
	} else {
		footer = components.NewButton("Launch Simulation", "enter", theme.ButtonSuccess).View()
	}

	return components.Card(mapView, cw, s.flow.Running()) + "\n" + footer
}

func renderSuccess(cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ Mission Success")
	sub := theme.Body.Width(components.CardInner(cw)).Render("The objective was secured without triggering the PulseGrid.")

	stat := func(caption, value string, c lipgloss.Style) string {
		return lipgloss.NewStyle().Width((cw-8)/2).Align(lipgloss.Center).Render(
			theme.Hint.Render(caption) + "\n" + c.Bold(true).Render(value))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Stealth Rating", "S-Tier", lipgloss.NewStyle().Foreground(theme.Gold)),
		stat("Reward", fmt.Sprintf("+%d XP", SuccessXP), lipgloss.NewStyle().Foreground(theme.Primary)),
	)

	back := components.NewButton("Return to HQ", "enter", theme.ButtonPrimary)
	return components.Card(title+"\n\n"+sub+"\n\n"+stats, cw, true) + "\n" + back.View()
}
