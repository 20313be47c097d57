// Package oracle is the advisory chat screen.
package oracle

import (
	"context"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/advisor"
	"github.com/abhisek/shadowmaster/internal/chat"
	"github.com/abhisek/shadowmaster/internal/llm"
	"github.com/abhisek/shadowmaster/internal/logging"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/screen"
	"github.com/abhisek/shadowmaster/internal/ui/components"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

const (
	placeholder = "Ask for tactical advice..."
	charLimit   = 500
)

// replyMsg carries the advisory reply for one turn.
type replyMsg struct {
	turn chat.Turn
	text string
}

type keyMap struct {
	Send   key.Binding
	Scroll key.Binding
	Exit   key.Binding
}

var keys = keyMap{
	Send:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "transmit")),
	Scroll: key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑↓", "scroll")),
	Exit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
}

// OracleScreen is a chat with the advisor persona. One request may be in
// flight; replies arriving after Close are dropped.
type OracleScreen struct {
	session  *chat.Session
	asker    screen.Asker
	online   bool
	input    components.TextInput
	viewport viewport.Model
	spinner  spinner.Model
	log      *logging.Logger
	cache    transcript

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*OracleScreen)(nil)
var _ screen.KeyHintProvider = (*OracleScreen)(nil)
var _ screen.Closer = (*OracleScreen)(nil)
var _ screen.InputCapturer = (*OracleScreen)(nil)

// New creates the chat screen. online only affects the status line; an
// offline asker still answers with its fallback text.
func New(asker screen.Asker, online bool, log *logging.Logger) *OracleScreen {
	ctx, cancel := context.WithCancel(context.Background())
	session := chat.New()
	return &OracleScreen{
		session:  session,
		asker:    asker,
		online:   online,
		input:    components.NewTextInput(placeholder, charLimit),
		viewport: viewport.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
		log:    log.With("chat", session.ID()),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *OracleScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *OracleScreen) Title() string {
	return "The Oracle"
}

// Session exposes the underlying conversation.
func (s *OracleScreen) Session() *chat.Session {
	return s.session
}

func (s *OracleScreen) CapturesInput() bool {
	return true
}

// Close cancels any in-flight request and closes the session.
func (s *OracleScreen) Close() {
	s.cancel()
	s.session.Close()
}

func (s *OracleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if s.session.Receive(msg.turn, msg.text) {
			s.log.Debug("advisor replied", "seq", msg.turn.Seq)
		}
		s.input.SetLocked(false)
		return s, nil

	case spinner.TickMsg:
		if !s.session.Pending() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Exit):
			return s, screen.Navigate(nav.Home())
		case key.Matches(msg, keys.Send):
			return s, s.send()
		case key.Matches(msg, keys.Scroll):
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *OracleScreen) send() tea.Cmd {
	turn, ok := s.session.Send(s.input.Value())
	if !ok {
		return nil
	}
	s.input.Reset()
	s.input.SetLocked(true)
	s.log.Debug("advisor asked", "seq", turn.Seq)

	ctx := llm.WithPurpose(s.ctx, llm.PurposeMentor)
	asker := s.asker
	sp := s.spinner
	return tea.Batch(
		func() tea.Msg { return sp.Tick() },
		func() tea.Msg {
			return replyMsg{turn: turn, text: asker.Ask(ctx, turn.Prompt, advisor.MentorPersona)}
		},
	)
}

func (s *OracleScreen) KeyHints() []key.Binding {
	send := keys.Send
	send.SetEnabled(s.session.CanSend(s.input.Value()))
	return []key.Binding{send, keys.Scroll, keys.Exit}
}
