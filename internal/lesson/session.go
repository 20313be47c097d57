package lesson

import (
	"github.com/google/uuid"

	"github.com/abhisek/shadowmaster/internal/content"
)

// DefaultXPReward is the experience awarded for finishing a lesson.
const DefaultXPReward = 50

// Status is the resolution state of the current step.
type Status int

const (
	StatusActive Status = iota
	StatusCorrect
	StatusIncorrect
	StatusInfoAcknowledged
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	case StatusInfoAcknowledged:
		return "info_acknowledged"
	}
	return "unknown"
}

// Action is a learner operation the session may currently accept.
type Action string

const (
	ActionSelect  Action = "select"
	ActionConfirm Action = "confirm"
	ActionRetry   Action = "retry"
	ActionAdvance Action = "advance"
)

// Completed is emitted exactly once, when the last step is advanced past.
type Completed struct {
	SessionID string
	LessonID  int
	XP        int
}

// Session drives one pass through a lesson. Operations invoked outside
// their valid state are no-ops that report false; Actions exposes which
// ones are currently valid so callers can disable the rest.
type Session struct {
	id       string
	lesson   content.Lesson
	reward   int
	index    int
	selected string
	status   Status
	finished bool
}

// NewSession starts a fresh session at step 0. A negative reward is
// treated as zero.
func NewSession(l content.Lesson, reward int) *Session {
	if reward < 0 {
		reward = 0
	}
	return &Session{
		id:     uuid.NewString(),
		lesson: l,
		reward: reward,
		status: StatusActive,
	}
}

func (s *Session) ID() string { return s.id }
func (s *Session) Lesson() content.Lesson { return s.lesson }
func (s *Session) Index() int { return s.index }
func (s *Session) StepCount() int { return len(s.lesson.Steps) }
func (s *Session) Selected() string { return s.selected }
func (s *Session) Status() Status { return s.status }
func (s *Session) Finished() bool { return s.finished }
func (s *Session) Step() content.Step { return s.lesson.Steps[s.index] }
func (s *Session) IsLastStep() bool { return s.index == len(s.lesson.Steps)-1 }

// Can reports whether action is valid in the current state.
func (s *Session) Can(a Action) bool {
	if s.finished || len(s.lesson.Steps) == 0 {
		return false
	}
	step := s.Step()
	switch a {
	case ActionSelect:
		return step.IsQuestion() && s.status == StatusActive
	case ActionConfirm:
		if s.status != StatusActive {
			return false
		}
		return !step.IsQuestion() || s.selected != ""
	case ActionRetry:
		return s.status == StatusIncorrect
	case ActionAdvance:
		return s.status == StatusCorrect || s.status == StatusInfoAcknowledged
	}
	return false
}

// Actions returns the currently valid actions.
func (s *Session) Actions() []Action {
	var out []Action
	for _, a := range []Action{ActionSelect, ActionConfirm, ActionRetry, ActionAdvance} {
		if s.Can(a) {
			out = append(out, a)
		}
	}
	return out
}

// SelectOption records the chosen option, overwriting any prior choice.
// Unknown ids are ignored.
func (s *Session) SelectOption(id string) bool {
	if !s.Can(ActionSelect) {
		return false
	}
	if _, ok := s.Step().Option(id); !ok {
		return false
	}
	s.selected = id
	return true
}

// Confirm resolves the current step.
func (s *Session) Confirm() bool {
	if !s.Can(ActionConfirm) {
		return false
	}
	step := s.Step()
	if !step.IsQuestion() {
		s.status = StatusInfoAcknowledged
		return true
	}
	opt, _ := step.Option(s.selected)
	if opt.Correct {
		s.status = StatusCorrect
	} else {
		s.status = StatusIncorrect
	}
	return true
}

// Retry returns an incorrect answer to Active and clears the selection so
// the learner picks again.
func (s *Session) Retry() bool {
	if !s.Can(ActionRetry) {
		return false
	}
	s.status = StatusActive
	s.selected = ""
	return true
}

// Advance moves to the next step. On the last step it finishes the session
// and returns the completion event; every later call is rejected.
func (s *Session) Advance() (*Completed, bool) {
	if !s.Can(ActionAdvance) {
		return nil, false
	}
	if !s.IsLastStep() {
		s.index++
		s.selected = ""
		s.status = StatusActive
		return nil, true
	}
	s.finished = true
	return &Completed{SessionID: s.id, LessonID: s.lesson.ID, XP: s.reward}, true
}

// Feedback returns the selected option once a question has been judged.
func (s *Session) Feedback() (content.Option, bool) {
	if s.status != StatusCorrect && s.status != StatusIncorrect {
		return content.Option{}, false
	}
	return s.Step().Option(s.selected)
}

// Progress returns display progress in [0, 1]. A resolved step counts as
// done before Advance is called.
func (s *Session) Progress() float64 {
	total := len(s.lesson.Steps)
	if total == 0 || s.finished {
		return 1
	}
	done := s.index
	if s.status == StatusCorrect || s.status == StatusInfoAcknowledged {
		done++
	}
	p := float64(done) / float64(total)
	if p > 1 {
		p = 1
	}
	return p
}
