package chat

import (
	"strings"

	"github.com/google/uuid"
)

// Welcome is the assistant's opening line.
const Welcome = "Connection established. I am Ghostwalker Prime. What tactical data do you require, Rookie?"

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the log.
type Message struct {
	Role Role
	Text string
}

// Turn identifies one outstanding request. Only the current turn of a live
// session can be answered.
type Turn struct {
	SessionID string
	Seq       uint64
	Prompt    string
}

// Session is an append-only advisory conversation with at most one
// request in flight.
type Session struct {
	id      string
	log     []Message
	pending bool
	seq     uint64
	closed  bool
}

// New returns a session seeded with the welcome message.
func New() *Session {
	return &Session{
		id:  uuid.NewString(),
		log: []Message{{Role: RoleAssistant, Text: Welcome}},
	}
}

func (s *Session) ID() string {
	return s.id
}

// Messages returns the log. Callers must not modify it.
func (s *Session) Messages() []Message {
	return s.log
}

func (s *Session) Len() int {
	return len(s.log)
}

func (s *Session) Pending() bool {
	return s.pending
}

func (s *Session) Closed() bool {
	return s.closed
}

// CanSend reports whether text would be accepted.
func (s *Session) CanSend(text string) bool {
	return !s.closed && !s.pending && strings.TrimSpace(text) != ""
}

// Send appends the user message and opens a turn. Empty text, a pending
// request or a closed session make it a no-op.
func (s *Session) Send(text string) (Turn, bool) {
	if !s.CanSend(text) {
		return Turn{}, false
	}
	s.log = append(s.log, Message{Role: RoleUser, Text: text})
	s.pending = true
	s.seq++
	return Turn{SessionID: s.id, Seq: s.seq, Prompt: text}, true
}

// Receive appends the reply for the outstanding turn and clears pending.
// Replies for other turns or sessions, or after Close, are dropped.
func (s *Session) Receive(t Turn, reply string) bool {
	if s.closed || !s.pending || t.SessionID != s.id || t.Seq != s.seq {
		return false
	}
	s.log = append(s.log, Message{Role: RoleAssistant, Text: reply})
	s.pending = false
	return true
}

// Close tears the session down; late replies are dropped.
func (s *Session) Close() {
	s.closed = true
	s.pending = false
}
