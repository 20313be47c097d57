package home

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shadowmaster/internal/content"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/profile"
	"github.com/abhisek/shadowmaster/internal/screen"
	"github.com/abhisek/shadowmaster/internal/ui/components"
	"github.com/abhisek/shadowmaster/internal/ui/layout"
)

// module is a dashboard shortcut. Targets use the legacy string names so
// the dashboard stays in step with nav.ParseTarget.
type module struct {
	label  string
	target string
	params map[string]any
}

// HomeScreen is the operative dashboard.
type HomeScreen struct {
	menu             components.Menu
	stats            profile.Stats
	objective        content.Lesson
	reward           int
	rank             components.Meter
	advisorAvailable bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. The objective card and Start Lesson both
// point at the first lesson in the catalog.
func New(catalog *content.Catalog, stats profile.Stats, reward int, advisorAvailable bool) *HomeScreen {
	objective := catalog.LessonOrFirst(0)

	modules := []module{
		{label: "START LESSON", target: "lesson", params: map[string]any{"lessonId": objective.ID}},
		{label: "LESSONS", target: "lessons_list"},
		{label: "MISSIONS", target: "missions"},
		{label: "ORACLE", target: "mentor"},
		{label: "SIMS", target: "sims"},
		{label: "ROLES", target: "roles"},
	}

	items := make([]components.MenuItem, 0, len(modules))
	for _, m := range modules {
		target := nav.ParseTarget(m.target, m.params)
		items = append(items, components.MenuItem{
			Label:  m.label,
			Action: func() tea.Cmd { return screen.Navigate(target) },
		})
	}

	return &HomeScreen{
		menu:             components.NewMenu(items),
		stats:            stats,
		objective:        objective,
		reward:           reward,
		rank:             components.NewMeter(0),
		advisorAvailable: advisorAvailable,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	var cmd tea.Cmd
	h.rank, cmd = h.rank.SetTarget(profile.RankProgress(h.stats.XP))
	return cmd
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(components.MeterFrameMsg); ok {
		var cmd tea.Cmd
		h.rank, cmd = h.rank.Update(msg)
		return h, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		// The grid is two columns wide; left/right step across it.
		switch kmsg.String() {
		case "left", "h":
			h.menu = h.menu.Move(-1)
			return h, nil
		case "right", "l":
			h.menu = h.menu.Move(1)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if !compact {
		sections = append(sections, renderObjectiveCard(h.objective, h.reward, cw))
	}
	sections = append(sections, renderRankMeter(h.rank, h.stats.XP, cw))
	if compact {
		sections = append(sections, renderModuleMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderModuleMenu(h.menu, cw))
	}
	if !h.advisorAvailable {
		sections = append(sections, renderAdvisorBanner(cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return renderHubFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "navigate")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}
