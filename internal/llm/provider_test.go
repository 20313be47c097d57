package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/shadowmaster/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockText("stay dark"),
	)

	resp1, err := mock.Generate(context.Background(), UserPrompt("", "first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), UserPrompt("", "second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text() != "stay dark" {
		t.Fatalf("expected 'stay dark', got %q", resp2.Text())
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockText("ok"))
	_, _ = mock.Generate(context.Background(), UserPrompt("sys", "hello"))

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sys", calls[0].System)
	assert.Equal(t, "hello", calls[0].Messages[0].Content)
	assert.Equal(t, RoleUser, calls[0].Messages[0].Role)
}

func TestMockProvider_HonorsCancelledContext(t *testing.T) {
	mock := NewMockProvider(MockText("never"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"json string", `"hello operative"`, "hello operative"},
		{"escaped", `"line one\nline two"`, "line one\nline two"},
		{"raw text", `plain reply`, "plain reply"},
		{"object", `{"a":1}`, `{"a":1}`},
		{"empty", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Response{Content: json.RawMessage(tt.content)}
			assert.Equal(t, tt.want, r.Text())
		})
	}

	var nilResp *Response
	assert.Equal(t, "", nilResp.Text())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))

	ctx = WithPurpose(ctx, PurposeMentor)
	assert.Equal(t, PurposeMentor, PurposeFrom(ctx))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SHADOW_LLM_PROVIDER", "openrouter")
	t.Setenv("SHADOW_OPENROUTER_API_KEY", "sk-or")
	t.Setenv("SHADOW_OPENROUTER_MODEL", "meta-llama/llama-3-8b")
	t.Setenv("SHADOW_GEMINI_API_KEY", "g-key")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "openrouter", cfg.Provider)
	assert.Equal(t, "sk-or", cfg.OpenRouter.APIKey)
	assert.Equal(t, "meta-llama/llama-3-8b", cfg.OpenRouter.Model)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model, "unset model keeps default")
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "gemini", cfg.Provider, "gemini wins over anthropic")
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
}

func TestNewProviderFromEnv_NotConfigured(t *testing.T) {
	for _, k := range []string{"SHADOW_LLM_PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	_, err := NewProviderFromEnv(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "gemini"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHADOW_GEMINI_API_KEY")
}

type recordingRepo struct {
	rows []store.RequestData
	err  error
}

func (r *recordingRepo) AppendRequest(_ context.Context, data store.RequestData) error {
	r.rows = append(r.rows, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	rec := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: textContent("Go dark."),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, "gemini", rec, nil)

	ctx := WithPurpose(context.Background(), PurposeMentor)
	resp, err := p.Generate(ctx, UserPrompt("persona", "how do I hide?"))
	require.NoError(t, err)
	assert.Equal(t, "Go dark.", resp.Text())

	require.Len(t, rec.rows, 1)
	row := rec.rows[0]
	assert.Equal(t, "gemini", row.Provider)
	assert.Equal(t, "mock", row.Model)
	assert.Equal(t, PurposeMentor, row.Purpose)
	assert.True(t, row.Success)
	assert.Equal(t, 12, row.InputTokens)
	assert.Equal(t, 3, row.OutputTokens)
	assert.Equal(t, "Go dark.", row.ResponseBody)
	assert.Contains(t, row.RequestBody, "[system]\npersona")
	assert.Contains(t, row.RequestBody, "[user]\nhow do I hide?")
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	rec := &recordingRepo{}
	p := WithLogging(NewMockProvider(MockError(errors.New("boom"))), "openai", rec, nil)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	require.Len(t, rec.rows, 1)
	assert.False(t, rec.rows[0].Success)
	assert.Equal(t, "boom", rec.rows[0].ErrorMessage)
	assert.Equal(t, "unknown", rec.rows[0].Purpose)
}

func TestLoggingProvider_RecorderErrorIgnored(t *testing.T) {
	rec := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockText("fine")), "mock", rec, nil)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "fine", resp.Text())
}

func TestLoggingProvider_SchemaInRequestBody(t *testing.T) {
	body := serializeRequest(Request{
		Schema: &Schema{Name: "mission-briefing", Definition: map[string]any{"type": "object"}},
	})
	assert.Contains(t, body, "[schema: mission-briefing]")
	assert.Contains(t, body, `{"type":"object"}`)
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	require.NotNil(t, c)
	assert.InDelta(t, 0.3+2.5, c.Cost(1_000_000, 1_000_000), 1e-9)

	assert.NotNil(t, LookupCost("google/gemini-2.5-flash"), "openrouter slug")
	assert.Nil(t, LookupCost("no-such-model"))
	assert.Nil(t, LookupCost("vendor/no-such-model"))
}

func TestRetryWrapsLogging(t *testing.T) {
	rec := &recordingRepo{}
	mock := NewMockProvider(
		MockError(&ErrProviderUnavailable{Err: errors.New("down")}),
		MockText("back online"),
	)
	p := WithRetry(WithLogging(mock, "mock", rec, nil), RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     time.Millisecond,
		Multiplier:  1,
	})

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "back online", resp.Text())
	assert.Len(t, rec.rows, 2, "each attempt is recorded")
}
