package lesson

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shadowmaster/internal/content"
	sess "github.com/abhisek/shadowmaster/internal/lesson"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/screen"
	"github.com/abhisek/shadowmaster/internal/ui/components"
)

type keyMap struct {
	Choose  key.Binding
	Pick    key.Binding
	Primary key.Binding
	Retry   key.Binding
	Exit    key.Binding
}

var keys = keyMap{
	Choose:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "choose")),
	Pick:    key.NewBinding(key.WithKeys("space", "a", "b", "c", "d"), key.WithHelp("a-d", "pick")),
	Primary: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "try again")),
	Exit:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit")),
}

// LessonScreen runs one lesson session. Leaving the screen abandons the
// session; only a completed session is reported.
type LessonScreen struct {
	session  *sess.Session
	choices  components.MultiChoice
	progress components.Meter
	done     bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New starts a session over l awarding reward XP on completion.
func New(l content.Lesson, reward int) *LessonScreen {
	s := &LessonScreen{
		session:  sess.NewSession(l, reward),
		progress: components.NewMeter(0),
	}
	s.resetChoices()
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return s.session.Lesson().Title
}

// Session exposes the underlying state machine.
func (s *LessonScreen) Session() *sess.Session {
	return s.session
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.MeterFrameMsg:
		var cmd tea.Cmd
		s.progress, cmd = s.progress.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	switch {
	case key.Matches(msg, keys.Exit):
		return s, screen.Navigate(nav.Home())

	case key.Matches(msg, keys.Retry):
		if s.session.Retry() {
			return s, nil
		}

	case key.Matches(msg, keys.Primary):
		return s.primary()

	case msg.String() == "space":
		if cur, ok := s.choices.Current(); ok {
			s.session.SelectOption(cur.ID)
		}

	default:
		if !s.session.Can(sess.ActionSelect) {
			return s, nil
		}
		before := s.choices.Cursor
		var jumped bool
		s.choices, jumped = s.choices.Update(msg)
		if jumped || s.choices.Cursor != before {
			if cur, ok := s.choices.Current(); ok {
				s.session.SelectOption(cur.ID)
			}
		}
	}
	return s, nil
}

// primary performs whichever of confirm, retry or advance is valid.
func (s *LessonScreen) primary() (screen.Screen, tea.Cmd) {
	switch {
	case s.session.Can(sess.ActionConfirm):
		s.session.Confirm()
		return s, s.animateProgress()

	case s.session.Can(sess.ActionRetry):
		s.session.Retry()
		return s, nil

	case s.session.Can(sess.ActionAdvance):
		completed, _ := s.session.Advance()
		if completed != nil {
			s.done = true
			c := *completed
			return s, tea.Batch(
				s.animateProgress(),
				func() tea.Msg { return screen.LessonCompletedMsg{Completed: c} },
			)
		}
		s.resetChoices()
		return s, s.animateProgress()
	}
	return s, nil
}

func (s *LessonScreen) animateProgress() tea.Cmd {
	var cmd tea.Cmd
	s.progress, cmd = s.progress.SetTarget(s.session.Progress())
	return cmd
}

func (s *LessonScreen) resetChoices() {
	if s.session.Finished() || s.session.StepCount() == 0 {
		s.choices = components.MultiChoice{}
		return
	}
	s.choices = components.NewMultiChoice(s.session.Step().Options)
}

func (s *LessonScreen) KeyHints() []key.Binding {
	primary := keys.Primary
	primary.SetHelp("enter", strings.ToLower(s.primaryLabel()))

	hints := []key.Binding{}
	if s.session.Can(sess.ActionSelect) {
		hints = append(hints, keys.Choose, keys.Pick)
	}
	if s.primaryLabel() != "" {
		hints = append(hints, primary)
	}
	if s.session.Can(sess.ActionRetry) {
		hints = append(hints, keys.Retry)
	}
	return append(hints, keys.Exit)
}

// primaryLabel names the action enter currently performs.
func (s *LessonScreen) primaryLabel() string {
	step := content.Step{}
	if !s.session.Finished() {
		step = s.session.Step()
	}
	switch {
	case s.session.Finished():
		return ""
	case s.session.Status() == sess.StatusActive && !step.IsQuestion():
		return "Understood"
	case s.session.Status() == sess.StatusActive:
		return "Confirm"
	case s.session.Status() == sess.StatusIncorrect:
		return "Try Again"
	case s.session.IsLastStep():
		return "Complete Module"
	default:
		return "Continue ->"
	}
}
