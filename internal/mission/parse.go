package mission

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/shadowmaster/internal/llm"
)

// StripFences removes a Markdown code fence (with or without a language
// tag) around the payload and trims surrounding whitespace.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}

	body := s[start+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		if tag := strings.TrimSpace(body[:nl]); !strings.ContainsAny(tag, "{[") {
			body = body[nl+1:]
		}
	} else if !strings.HasPrefix(strings.TrimSpace(body), "{") {
		body = strings.TrimPrefix(body, "json")
	}

	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// ParseMission decodes generated text into a Mission. The text may be
// fenced. Any decode or schema failure is returned as an error.
func ParseMission(text string) (Mission, error) {
	raw := json.RawMessage(StripFences(text))
	if len(raw) == 0 {
		return Mission{}, fmt.Errorf("empty mission payload")
	}

	if err := llm.ValidateJSON(Schema, raw); err != nil {
		return Mission{}, fmt.Errorf("validate mission: %w", err)
	}

	var m Mission
	if err := json.Unmarshal(raw, &m); err != nil {
		return Mission{}, fmt.Errorf("decode mission: %w", err)
	}
	return m, nil
}
