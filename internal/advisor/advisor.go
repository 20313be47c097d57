// Package advisor is the text-in/text-out boundary to the language model.
// Ask always resolves to displayable text; failures become in-fiction
// placeholder lines.
package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/abhisek/shadowmaster/internal/llm"
	"github.com/abhisek/shadowmaster/internal/logging"
)

const (
	// GarbledReply replaces an empty or unreadable response.
	GarbledReply = "Transmission garbled. Re-aligning encryption protocols."

	// SeveredReply replaces any transport, provider or timeout failure.
	SeveredReply = "Connection severed. The grid is jamming our signal. Try again later."
)

// MentorPersona is the system instruction for the advisor chat.
const MentorPersona = "You are Ghostwalker Prime, an elite master thief instructor in a cyberpunk setting. " +
	"You are teaching a rookie. Be cryptic, professional, use slang like 'flux-state', 'grid-lock', 'zero-day'. " +
	"Keep answers under 50 words. Focus on stealth, security, and social engineering."

const (
	DefaultTimeout   = 30 * time.Second
	defaultMaxTokens = 1024
)

// Service asks the configured provider. A nil provider is valid and always
// answers SeveredReply.
type Service struct {
	provider llm.Provider
	timeout  time.Duration
	log      *logging.Logger
}

func New(provider llm.Provider, timeout time.Duration, log *logging.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{provider: provider, timeout: timeout, log: log}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// Ask sends prompt under persona and returns the reply text. It never
// fails: errors resolve to SeveredReply and empty replies to GarbledReply.
// A purpose set on ctx with llm.WithPurpose is recorded with the request.
func (s *Service) Ask(ctx context.Context, prompt, persona string) string {
	if !s.Available() {
		s.logger().Warn("advisory request without provider", "purpose", llm.PurposeFrom(ctx))
		return SeveredReply
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := llm.UserPrompt(persona, prompt)
	req.MaxTokens = defaultMaxTokens

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.logger().Warn("advisory request failed", "purpose", llm.PurposeFrom(ctx), "error", err)
		return SeveredReply
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		s.logger().Warn("advisory reply empty", "purpose", llm.PurposeFrom(ctx), "model", resp.Model)
		return GarbledReply
	}
	return text
}

func (s *Service) logger() *logging.Logger {
	if s == nil {
		return nil
	}
	return s.log
}
