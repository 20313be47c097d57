package screen

import (
	"context"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shadowmaster/internal/lesson"
	"github.com/abhisek/shadowmaster/internal/nav"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []key.Binding
}

// Closer is implemented by screens that own in-flight work. Close is called
// once when the screen is torn down; results arriving afterwards must be
// dropped.
type Closer interface {
	Close()
}

// InputCapturer is implemented by screens with a focused text field. While
// CapturesInput is true, printable keys go to the screen instead of global
// shortcuts.
type InputCapturer interface {
	CapturesInput() bool
}

// NavigateMsg asks the app to move to Target.
type NavigateMsg struct {
	Target nav.Target
}

// Navigate returns a command emitting NavigateMsg.
func Navigate(t nav.Target) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Target: t} }
}

// LessonCompletedMsg reports a finished lesson session so the app can
// credit the profile.
type LessonCompletedMsg struct {
	Completed lesson.Completed
}

// Asker is the advisory boundary screens depend on. It always resolves to
// displayable text.
type Asker interface {
	Ask(ctx context.Context, prompt, persona string) string
}
