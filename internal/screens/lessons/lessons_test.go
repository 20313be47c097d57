package lessons

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shadowmaster/internal/content"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/screen"
)

func TestSelectLesson(t *testing.T) {
	s := New(content.Default())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(screen.NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, nav.LessonOverlay{LessonID: 2}, msg.Target)
}

func TestEscGoesHome(t *testing.T) {
	s := New(content.Default())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, screen.NavigateMsg{Target: nav.Home()}, cmd())
}

func TestView(t *testing.T) {
	view := New(content.Default()).View(100, 30)
	assert.Contains(t, view, "Training Modules")
	assert.Contains(t, view, "Visual Casing")
	assert.Contains(t, view, "Digital Silence")
	assert.Contains(t, view, "More modules unlocking at Level 4")
}
