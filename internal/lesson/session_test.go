package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shadowmaster/internal/content"
)

func testLesson() content.Lesson {
	return content.Lesson{
		ID:     1,
		Title:  "Visual Casing",
		Module: "Module 01",
		Steps: []content.Step{
			{Kind: content.StepInfo, Content: "Dome cameras cannot see beneath themselves."},
			{Kind: content.StepQuestion, Prompt: "Where do you stand?", Options: []content.Option{
				{ID: "a", Text: "Corner", Feedback: "Covered."},
				{ID: "b", Text: "Beneath", Correct: true, Feedback: "Dead zone."},
			}},
			{Kind: content.StepQuestion, Prompt: "Which door?", Options: []content.Option{
				{ID: "a", Text: "Magnetic", Correct: true, Feedback: "Spoofable."},
				{ID: "b", Text: "Pressure", Feedback: "Mechanical."},
			}},
		},
	}
}

func TestNewSession_InitialState(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, StatusActive, s.Status())
	assert.Empty(t, s.Selected())
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, []Action{ActionConfirm}, s.Actions())
}

func TestConfirm_InfoStepAcknowledges(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	require.True(t, s.Confirm())
	assert.Equal(t, StatusInfoAcknowledged, s.Status())
	assert.Equal(t, []Action{ActionAdvance}, s.Actions())
}

func TestSelectOption_NotAllowedOnInfoStep(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	assert.False(t, s.SelectOption("a"))
	assert.Empty(t, s.Selected())
}

func TestConfirm_QuestionWithoutSelectionIsNoop(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	s.Confirm()
	s.Advance()

	assert.False(t, s.Can(ActionConfirm))
	assert.False(t, s.Confirm())
	assert.Equal(t, StatusActive, s.Status())
}

func TestScenario_SelectCorrectConfirmAdvance(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	s.Confirm()
	s.Advance()
	require.Equal(t, 1, s.Index())

	require.True(t, s.SelectOption("b"))
	require.True(t, s.Confirm())
	assert.Equal(t, StatusCorrect, s.Status())

	fb, ok := s.Feedback()
	require.True(t, ok)
	assert.Equal(t, "Dead zone.", fb.Feedback)

	done, ok := s.Advance()
	require.True(t, ok)
	assert.Nil(t, done)
	assert.Equal(t, 2, s.Index())
	assert.Empty(t, s.Selected())
	assert.Equal(t, StatusActive, s.Status())
}

func TestSelectOption_OverwritesAndIgnoresUnknown(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	s.Confirm()
	s.Advance()

	s.SelectOption("a")
	s.SelectOption("b")
	assert.Equal(t, "b", s.Selected())

	assert.False(t, s.SelectOption("z"))
	assert.Equal(t, "b", s.Selected())
}

func TestIncorrectRetryCycle(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	s.Confirm()
	s.Advance()

	for i := 0; i < 5; i++ {
		require.True(t, s.SelectOption("a"))
		require.True(t, s.Confirm())
		require.Equal(t, StatusIncorrect, s.Status())
		assert.Equal(t, []Action{ActionRetry}, s.Actions())
		assert.False(t, s.SelectOption("b"), "selection locked while incorrect")

		_, advanced := s.Advance()
		assert.False(t, advanced, "cannot advance from incorrect")

		require.True(t, s.Retry())
		assert.Equal(t, StatusActive, s.Status())
		assert.Empty(t, s.Selected())
		assert.True(t, s.Can(ActionSelect))
		assert.Equal(t, 1, s.Index())
	}

	require.True(t, s.SelectOption("b"))
	require.True(t, s.Confirm())
	assert.Equal(t, StatusCorrect, s.Status())
}

func TestRetry_OnlyFromIncorrect(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	assert.False(t, s.Retry())
	s.Confirm()
	assert.False(t, s.Retry())
	assert.Equal(t, StatusInfoAcknowledged, s.Status())
}

func TestAdvance_FromActiveRejected(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	done, ok := s.Advance()
	assert.False(t, ok)
	assert.Nil(t, done)
	assert.Equal(t, 0, s.Index())
}

func completeAll(t *testing.T, s *Session) []*Completed {
	t.Helper()
	var events []*Completed
	for i := 0; i < 20; i++ {
		step := s.Step()
		if step.IsQuestion() {
			for _, o := range step.Options {
				if o.Correct {
					s.SelectOption(o.ID)
				}
			}
		}
		s.Confirm()
		done, ok := s.Advance()
		if done != nil {
			events = append(events, done)
		}
		if !ok || s.Finished() {
			break
		}
	}
	return events
}

func TestAdvance_LastStepCompletesExactlyOnce(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	events := completeAll(t, s)

	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].LessonID)
	assert.Equal(t, 50, events[0].XP)
	assert.Equal(t, s.ID(), events[0].SessionID)
	assert.True(t, s.Finished())

	// Everything is rejected afterwards.
	done, ok := s.Advance()
	assert.False(t, ok)
	assert.Nil(t, done)
	assert.False(t, s.Confirm())
	assert.False(t, s.Retry())
	assert.Empty(t, s.Actions())
	assert.Equal(t, 2, s.Index())
}

func TestIndexNeverLeavesBounds(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	ops := []func(){
		func() { s.Confirm() },
		func() { s.Advance() },
		func() { s.SelectOption("a") },
		func() { s.SelectOption("b") },
		func() { s.Retry() },
	}
	for i := 0; i < 200; i++ {
		ops[(i*7+i/3)%len(ops)]()
		if s.Index() < 0 || s.Index() >= s.StepCount() {
			t.Fatalf("index %d out of [0,%d) after op %d", s.Index(), s.StepCount(), i)
		}
	}
}

func TestProgress(t *testing.T) {
	s := NewSession(testLesson(), DefaultXPReward)
	third := 1.0 / 3.0

	assert.InDelta(t, 0, s.Progress(), 1e-9)
	s.Confirm()
	assert.InDelta(t, third, s.Progress(), 1e-9)
	s.Advance()
	assert.InDelta(t, third, s.Progress(), 1e-9)

	s.SelectOption("a")
	s.Confirm()
	assert.InDelta(t, third, s.Progress(), 1e-9, "incorrect does not count as resolved")
	s.Retry()
	s.SelectOption("b")
	s.Confirm()
	assert.InDelta(t, 2*third, s.Progress(), 1e-9)
	s.Advance()

	s.SelectOption("a")
	s.Confirm()
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)
	s.Advance()
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)
}

func TestNewSession_NegativeRewardClamped(t *testing.T) {
	l := content.Lesson{ID: 9, Steps: []content.Step{{Kind: content.StepInfo, Content: "x"}}}
	s := NewSession(l, -10)
	s.Confirm()
	done, ok := s.Advance()
	require.True(t, ok)
	require.NotNil(t, done)
	assert.Equal(t, 0, done.XP)
}

func TestFreshSessionAfterCompletion(t *testing.T) {
	l := testLesson()
	first := NewSession(l, DefaultXPReward)
	completeAll(t, first)

	second := NewSession(l, DefaultXPReward)
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 0, second.Index())
	assert.False(t, second.Finished())
}
