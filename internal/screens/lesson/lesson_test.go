package lesson

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shadowmaster/internal/content"
	sess "github.com/abhisek/shadowmaster/internal/lesson"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLesson() content.Lesson {
	l, _ := content.Default().Lesson(1)
	return l
}

// collect runs cmd and any batched commands, keeping messages of type T.
// Meter frames are skipped.
func collect[T any](cmd tea.Cmd) []T {
	if cmd == nil {
		return nil
	}
	var out []T
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, collect[T](c)...)
		}
	case T:
		out = append(out, msg)
	}
	return out
}

func TestInfoStepUnderstoodThenContinue(t *testing.T) {
	s := New(testLesson(), 50)
	assert.Contains(t, s.View(100, 40), "Active Zone")
	assert.Equal(t, "Understood", s.primaryLabel())

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, sess.StatusInfoAcknowledged, s.session.Status())
	assert.Equal(t, "Continue ->", s.primaryLabel())

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, s.session.Index())
	assert.Equal(t, sess.StatusActive, s.session.Status())
}

func TestQuestion_ConfirmDisabledWithoutSelection(t *testing.T) {
	s := New(testLesson(), 50)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, sess.StatusActive, s.session.Status(), "enter without a pick does nothing")
	assert.Equal(t, "", s.session.Selected())
}

func TestQuestion_WrongThenRetryThenRight(t *testing.T) {
	s := New(testLesson(), 50)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	s.Update(keyPress('a'))
	assert.Equal(t, "a", s.session.Selected())
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, sess.StatusIncorrect, s.session.Status())
	assert.Contains(t, s.View(100, 40), "Mission Critical Error")

	// picking is locked until retry
	s.Update(keyPress('b'))
	assert.Equal(t, "a", s.session.Selected())

	s.Update(keyPress('r'))
	assert.Equal(t, sess.StatusActive, s.session.Status())
	assert.Equal(t, "", s.session.Selected())

	s.Update(specialKey(tea.KeyDown))
	assert.Equal(t, "b", s.session.Selected())
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, sess.StatusCorrect, s.session.Status())
	assert.Contains(t, s.View(100, 40), "Correct Analysis")
}

func TestCompleteEmitsOnce(t *testing.T) {
	s := New(testLesson(), 50)

	// info
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	// question 1: b is correct
	s.Update(keyPress('b'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	// question 2: a is correct
	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "Complete Module", s.primaryLabel())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	done := collect[screen.LessonCompletedMsg](cmd)
	require.Len(t, done, 1)
	assert.Equal(t, 1, done[0].Completed.LessonID)
	assert.Equal(t, 50, done[0].Completed.XP)
	assert.Equal(t, s.session.ID(), done[0].Completed.SessionID)
	assert.Contains(t, s.View(100, 40), "MODULE COMPLETE")

	_, cmd = s.Update(specialKey(tea.KeyEnter))
	assert.Empty(t, collect[screen.LessonCompletedMsg](cmd))
}

func TestEscExitsHome(t *testing.T) {
	s := New(testLesson(), 50)
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.Equal(t, screen.NavigateMsg{Target: nav.Home()}, cmd())
}

func TestKeyHints(t *testing.T) {
	s := New(testLesson(), 50)
	var labels []string
	for _, b := range s.KeyHints() {
		labels = append(labels, b.Help().Desc)
	}
	assert.Contains(t, labels, "understood")
	assert.Contains(t, labels, "exit")
	assert.NotContains(t, labels, "try again")
}
