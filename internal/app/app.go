package app

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shadowmaster/internal/advisor"
	"github.com/abhisek/shadowmaster/internal/config"
	"github.com/abhisek/shadowmaster/internal/content"
	"github.com/abhisek/shadowmaster/internal/logging"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/profile"
	"github.com/abhisek/shadowmaster/internal/router"
	"github.com/abhisek/shadowmaster/internal/screen"
	"github.com/abhisek/shadowmaster/internal/screens/dossier"
	"github.com/abhisek/shadowmaster/internal/screens/home"
	"github.com/abhisek/shadowmaster/internal/screens/lesson"
	"github.com/abhisek/shadowmaster/internal/screens/lessons"
	"github.com/abhisek/shadowmaster/internal/screens/missions"
	"github.com/abhisek/shadowmaster/internal/screens/oracle"
	"github.com/abhisek/shadowmaster/internal/screens/placeholder"
	"github.com/abhisek/shadowmaster/internal/ui/layout"
)

// Options holds dependencies injected from the CLI layer.
type Options struct {
	Config  config.Config
	Catalog *content.Catalog
	Advisor *advisor.Service
	Logger  *logging.Logger
}

// AppModel is the root Bubble Tea model. It owns navigation and the
// profile; screens only request changes through messages.
type AppModel struct {
	opts    Options
	nav     *nav.State
	profile *profile.Store
	router  *router.Router
	help    help.Model
	keys    keyMap
	width   int
	height  int
}

// New creates the root model on the Home tab.
func New(opts Options) *AppModel {
	if opts.Catalog == nil {
		opts.Catalog = content.Default()
	}
	if opts.Advisor == nil {
		opts.Advisor = advisor.New(nil, opts.Config.AdvisorTimeout, opts.Logger)
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()

	m := &AppModel{
		opts: opts,
		nav:  nav.New(),
		profile: profile.NewStore(profile.Stats{
			XP:               opts.Config.StartXP,
			Streak:           opts.Config.StartStreak,
			LessonsCompleted: opts.Config.StartLessons,
		}),
		help: h,
		keys: newKeyMap(),
	}
	m.router = router.New(m.buildScreen, m.nav.Resolve())
	return m
}

// buildScreen maps a resolved view to its screen.
func (m *AppModel) buildScreen(v nav.View) screen.Screen {
	log := m.opts.Logger
	if v.Overlay != nil {
		switch o := v.Overlay.(type) {
		case nav.LessonOverlay:
			return lesson.New(m.opts.Catalog.LessonOrFirst(o.LessonID), m.opts.Config.LessonXP)
		case nav.LessonListOverlay:
			return lessons.New(m.opts.Catalog)
		case nav.SimulationsOverlay:
			return missions.New(m.opts.Advisor, m.opts.Config.SimDuration, log)
		case nav.RolesOverlay:
			return placeholder.Roles()
		default:
			log.Warn("no screen for overlay", "overlay", o.OverlayName())
			return placeholder.Unknown(o.OverlayName())
		}
	}

	switch v.Tab {
	case nav.TabLessons:
		return lessons.New(m.opts.Catalog)
	case nav.TabMissions:
		return missions.New(m.opts.Advisor, m.opts.Config.SimDuration, log)
	case nav.TabProfile:
		return dossier.New(m.profile.Snapshot(), m.opts.Catalog)
	case nav.TabAdvisor:
		return oracle.New(m.opts.Advisor, m.opts.Advisor.Available(), log)
	default:
		return home.New(m.opts.Catalog, m.profile.Snapshot(), m.opts.Config.LessonXP, m.opts.Advisor.Available())
	}
}

// Nav exposes the navigation state.
func (m *AppModel) Nav() *nav.State { return m.nav }

// Profile exposes the progress store.
func (m *AppModel) Profile() *profile.Store { return m.profile }

// Active returns the hosted screen.
func (m *AppModel) Active() screen.Screen { return m.router.Active() }

func (m *AppModel) Init() tea.Cmd {
	if s := m.router.Active(); s != nil {
		return s.Init()
	}
	return nil
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width - 4)
		return m, nil

	case screen.NavigateMsg:
		return m, m.navigate(msg.Target)

	case screen.LessonCompletedMsg:
		stats := m.profile.CompleteLesson(msg.Completed.XP)
		m.opts.Logger.Info("lesson completed",
			"lesson", msg.Completed.LessonID,
			"session", msg.Completed.SessionID,
			"xp", msg.Completed.XP,
			"total_xp", stats.XP,
		)
		return m, m.navigate(nav.Home())

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	return m, m.router.Update(msg)
}

// handleGlobalKey processes quit, help and tab shortcuts. Printable
// shortcuts are left to screens that capture typing.
func (m *AppModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	m.syncKeys()

	switch {
	case key.Matches(msg, m.keys.ForceQ), key.Matches(msg, m.keys.Quit):
		m.router.Close()
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, true
	case key.Matches(msg, m.keys.NextTab):
		return m.navigate(nav.TabTarget{Tab: m.nav.Resolve().Tab.Next()}), true
	case key.Matches(msg, m.keys.PrevTab):
		return m.navigate(nav.TabTarget{Tab: m.nav.Resolve().Tab.Prev()}), true
	}

	for i, b := range m.keys.Tab {
		if key.Matches(msg, b) {
			return m.navigate(nav.TabTarget{Tab: nav.Tabs()[i]}), true
		}
	}
	return nil, false
}

// syncKeys disables printable shortcuts while the active screen captures
// typing, and refreshes the screen's own hints.
func (m *AppModel) syncKeys() {
	capturing := false
	if c, ok := m.router.Active().(screen.InputCapturer); ok {
		capturing = c.CapturesInput()
	}
	m.keys.Quit.SetEnabled(!capturing)
	m.keys.Help.SetEnabled(!capturing)
	for i := range m.keys.Tab {
		m.keys.Tab[i].SetEnabled(!capturing)
	}

	m.keys.Screen = nil
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		m.keys.Screen = p.KeyHints()
	}
}

func (m *AppModel) navigate(t nav.Target) tea.Cmd {
	m.nav.Navigate(t)
	v := m.nav.Resolve()
	if v != m.router.Current() {
		name := v.Tab.String()
		if v.Overlay != nil {
			name = v.Overlay.OverlayName()
		}
		m.opts.Logger.Debug("navigate", "view", name)
	}
	return m.router.Sync(v)
}

func (m *AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m *AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	stats := m.profile.Snapshot()
	header := layout.RenderHeader(title, stats.XP, stats.Streak, m.width)

	view := m.nav.Resolve()
	labels := make([]string, 0, len(nav.Tabs()))
	active := -1
	for i, tab := range nav.Tabs() {
		labels = append(labels, tab.String())
		if tab == view.Tab && view.Overlay == nil {
			active = i
		}
	}
	header += "\n" + layout.RenderTabBar(labels, active, m.width)

	m.syncKeys()
	footer := layout.RenderFooter(m.help.View(m.keys), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
