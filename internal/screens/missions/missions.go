package missions

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/llm"
	"github.com/abhisek/shadowmaster/internal/logging"
	"github.com/abhisek/shadowmaster/internal/mission"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/screen"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

// SuccessXP is shown on the success view. It is not credited.
const SuccessXP = 120

// simulationDoneMsg fires when a launched run's timer elapses.
type simulationDoneMsg struct {
	launch mission.Launch
}

// missionGeneratedMsg carries the advisory reply for one generation.
type missionGeneratedMsg struct {
	gen  mission.Generation
	text string
}

type keyMap struct {
	Briefing key.Binding
	Map      key.Binding
	Toggle   key.Binding
	Generate key.Binding
	Primary  key.Binding
	Exit     key.Binding
}

var keys = keyMap{
	Briefing: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "briefing")),
	Map:      key.NewBinding(key.WithKeys("m", "i"), key.WithHelp("m", "sim map")),
	Toggle:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "switch view")),
	Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "new contract")),
	Primary:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "launch")),
	Exit:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
}

// MissionsScreen drives one mission flow. Timers and advisory calls it
// started are dropped once the screen is closed.
type MissionsScreen struct {
	flow        *mission.Flow
	asker       screen.Asker
	simDuration time.Duration
	spinner     spinner.Model
	log         *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*MissionsScreen)(nil)
var _ screen.KeyHintProvider = (*MissionsScreen)(nil)
var _ screen.Closer = (*MissionsScreen)(nil)

// New creates a missions screen. simDuration is how long a launched
// simulation runs before succeeding.
func New(asker screen.Asker, simDuration time.Duration, log *logging.Logger) *MissionsScreen {
	ctx, cancel := context.WithCancel(context.Background())
	flow := mission.NewFlow()
	return &MissionsScreen{
		flow:        flow,
		asker:       asker,
		simDuration: simDuration,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
		log:    log.With("flow", flow.ID()),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *MissionsScreen) Init() tea.Cmd {
	return nil
}

func (s *MissionsScreen) Title() string {
	return "Missions"
}

// Flow exposes the underlying state machine.
func (s *MissionsScreen) Flow() *mission.Flow {
	return s.flow
}

// Close cancels in-flight work and closes the flow.
func (s *MissionsScreen) Close() {
	s.cancel()
	s.flow.Close()
}

func (s *MissionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case simulationDoneMsg:
		if s.flow.CompleteSimulation(msg.launch) {
			s.log.Info("simulation complete", "seq", msg.launch.Seq)
		}
		return s, nil

	case missionGeneratedMsg:
		applied, err := s.flow.ApplyGeneration(msg.gen, msg.text)
		if err != nil {
			s.log.Warn("generated mission rejected, using fallback", "error", err)
		}
		if applied {
			s.log.Info("mission generated", "codename", s.flow.Briefing().Codename)
		}
		return s, nil

	case spinner.TickMsg:
		if !s.busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *MissionsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Exit):
		return s, screen.Navigate(nav.Home())

	case key.Matches(msg, keys.Briefing):
		s.flow.SwitchView(mission.ViewBriefing)

	case key.Matches(msg, keys.Map):
		s.flow.SwitchView(mission.ViewMap)

	case key.Matches(msg, keys.Toggle):
		if s.flow.View() == mission.ViewMap {
			s.flow.SwitchView(mission.ViewBriefing)
		} else {
			s.flow.SwitchView(mission.ViewMap)
		}

	case key.Matches(msg, keys.Generate):
		if s.flow.View() == mission.ViewBriefing {
			return s, s.generate()
		}

	case key.Matches(msg, keys.Primary):
		switch s.flow.View() {
		case mission.ViewBriefing:
			s.flow.SwitchView(mission.ViewMap)
		case mission.ViewMap:
			return s, s.launch()
		case mission.ViewSuccess:
			s.flow.ReturnToBriefing()
		}
	}
	return s, nil
}

func (s *MissionsScreen) launch() tea.Cmd {
	l, ok := s.flow.LaunchSimulation()
	if !ok {
		return nil
	}
	s.log.Info("simulation launched", "seq", l.Seq)
	return tea.Batch(
		s.spin(),
		tea.Tick(s.simDuration, func(time.Time) tea.Msg {
			return simulationDoneMsg{launch: l}
		}),
	)
}

func (s *MissionsScreen) generate() tea.Cmd {
	g, ok := s.flow.BeginGeneration()
	if !ok {
		return nil
	}
	ctx := llm.WithPurpose(s.ctx, llm.PurposeMission)
	asker := s.asker
	return tea.Batch(
		s.spin(),
		func() tea.Msg {
			return missionGeneratedMsg{
				gen:  g,
				text: asker.Ask(ctx, mission.GeneratePrompt, mission.SystemInstruction),
			}
		},
	)
}

func (s *MissionsScreen) busy() bool {
	return s.flow.Running() || s.flow.Generating()
}

func (s *MissionsScreen) spin() tea.Cmd {
	sp := s.spinner
	return func() tea.Msg { return sp.Tick() }
}

func (s *MissionsScreen) KeyHints() []key.Binding {
	switch s.flow.View() {
	case mission.ViewSuccess:
		primary := keys.Primary
		primary.SetHelp("enter", "return to HQ")
		return []key.Binding{primary, keys.Exit}
	case mission.ViewMap:
		if s.flow.Running() {
			return []key.Binding{keys.Exit}
		}
		return []key.Binding{keys.Primary, keys.Toggle, keys.Exit}
	default:
		primary := keys.Primary
		primary.SetHelp("enter", "inspect route")
		hints := []key.Binding{primary, keys.Toggle}
		if s.flow.CanGenerate() {
			hints = append(hints, keys.Generate)
		}
		return append(hints, keys.Exit)
	}
}
