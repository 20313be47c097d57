// Package dossier is the profile screen: operative stats and the global
// leaderboard.
package dossier

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/content"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/profile"
	"github.com/abhisek/shadowmaster/internal/screen"
	"github.com/abhisek/shadowmaster/internal/ui/components"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

// Static dossier facts shown on the stats card.
const (
	Specialization = "Infiltrator"
	SimSuccessRate = 82
	MissionsClear  = 7
)

// Tab is the dossier sub-view.
type Tab int

const (
	TabStats Tab = iota
	TabRanking
)

type keyMap struct {
	Stats   key.Binding
	Ranking key.Binding
	Toggle  key.Binding
	Exit    key.Binding
}

var keys = keyMap{
	Stats:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "my stats")),
	Ranking: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "global ranking")),
	Toggle:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "switch")),
	Exit:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
}

// DossierScreen renders a snapshot of the profile taken when it opened.
type DossierScreen struct {
	stats       profile.Stats
	leaderboard []content.LeaderboardEntry
	user        content.LeaderboardEntry
	hasUser     bool
	tab         Tab
}

var _ screen.Screen = (*DossierScreen)(nil)
var _ screen.KeyHintProvider = (*DossierScreen)(nil)

func New(stats profile.Stats, catalog *content.Catalog) *DossierScreen {
	user, ok := catalog.CurrentUser()
	return &DossierScreen{
		stats:       stats,
		leaderboard: catalog.Leaderboard(),
		user:        user,
		hasUser:     ok,
	}
}

func (d *DossierScreen) Init() tea.Cmd { return nil }

func (d *DossierScreen) Title() string { return "Profile" }

// Tab returns the visible sub-view.
func (d *DossierScreen) Tab() Tab { return d.tab }

func (d *DossierScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(kmsg, keys.Exit):
		return d, screen.Navigate(nav.Home())
	case key.Matches(kmsg, keys.Stats):
		d.tab = TabStats
	case key.Matches(kmsg, keys.Ranking):
		d.tab = TabRanking
	case key.Matches(kmsg, keys.Toggle):
		if d.tab == TabStats {
			d.tab = TabRanking
		} else {
			d.tab = TabStats
		}
	}
	return d, nil
}

func (d *DossierScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if d.tab == TabRanking {
		body = d.renderRanking(cw)
	} else {
		body = d.renderStats(cw)
	}
	return components.Center(d.renderTabs()+"\n\n"+body, width, height)
}

func (d *DossierScreen) renderTabs() string {
	tab := func(label string, active bool) string {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.TextMuted)
		if active {
			style = style.Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
		}
		return style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab("My Stats", d.tab == TabStats),
		" ",
		tab("Global Ranking", d.tab == TabRanking),
	)
}

// operativeName is the learner's callsign without the leaderboard marker.
func (d *DossierScreen) operativeName() string {
	if !d.hasUser {
		return "OPERATIVE"
	}
	return strings.TrimSpace(strings.TrimSuffix(d.user.Name, "(YOU)"))
}

func (d *DossierScreen) renderStats(cw int) string {
	level := profile.Level(d.stats.XP)

	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(d.operativeName())
	rank := lipgloss.NewStyle().Foreground(theme.Primary).Render("Rank: " + profile.RankTitle(level))

	stat := func(caption, value string, c lipgloss.Style) string {
		return lipgloss.NewStyle().Width(components.CardInner(cw)/3).Align(lipgloss.Center).Render(
			c.Bold(true).Render(value) + "\n" + theme.Hint.Render(caption))
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Total XP", fmt.Sprintf("%d", d.stats.XP), lipgloss.NewStyle().Foreground(theme.Primary)),
		stat("Lvl", fmt.Sprintf("%d", level), lipgloss.NewStyle().Foreground(theme.Secondary)),
		stat("Streak", fmt.Sprintf("%d days", d.stats.Streak), lipgloss.NewStyle().Foreground(theme.Accent)),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Specialization", Specialization, lipgloss.NewStyle().Foreground(theme.Text)),
		stat("Sim Success", fmt.Sprintf("%d%%", SimSuccessRate), lipgloss.NewStyle().Foreground(theme.Success)),
		stat("Missions Cleared", fmt.Sprintf("%02d", MissionsClear), lipgloss.NewStyle().Foreground(theme.Gold)),
	)

	mastery := components.NewProgressBar("Mastery", profile.RankProgress(d.stats.XP), true, components.CardInner(cw)).View()
	lessons := theme.Hint.Render(fmt.Sprintf("%d training modules completed", d.stats.LessonsCompleted))

	return components.Card(strings.Join([]string{name, rank, "", row1, "", row2, "", mastery, lessons}, "\n"), cw, true)
}

func (d *DossierScreen) renderRanking(cw int) string {
	var sections []string

	if d.hasUser {
		you := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("#%d", d.user.Rank))
		sections = append(sections, components.Card(
			theme.Hint.Render("Your Current Rank")+"\n"+you+"  "+
				lipgloss.NewStyle().Foreground(theme.Success).Render("Top 5% of operatives globally"),
			cw, true))
	}

	var rows []string
	for _, e := range d.leaderboard {
		rows = append(rows, renderEntry(e, components.CardInner(cw)))
	}
	sections = append(sections, components.Card(strings.Join(rows, "\n"), cw, false))
	return strings.Join(sections, "\n")
}

func renderEntry(e content.LeaderboardEntry, width int) string {
	pos := theme.TierColor(e.Rank).Width(5).Render(fmt.Sprintf("#%d", e.Rank))

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if e.IsUser {
		nameStyle = theme.Selected
	}
	tier := theme.Hint.Render(e.Tier + " Tier")
	xp := lipgloss.NewStyle().Foreground(theme.Primary).Render(fmt.Sprintf("%d XP", e.XP))

	left := pos + nameStyle.Render(e.Name) + "  " + tier
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(xp), 1)
	return left + strings.Repeat(" ", gap) + xp
}

func (d *DossierScreen) KeyHints() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Stats, keys.Ranking, keys.Exit}
}
