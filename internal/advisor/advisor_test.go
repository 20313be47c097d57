package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/shadowmaster/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		want string
	}{
		{"text reply", llm.MockText("Weight transfer. Stay in flux-state."), "Weight transfer. Stay in flux-state."},
		{"trimmed", llm.MockText("  zero-day  \n"), "zero-day"},
		{"raw body", llm.MockResponse{Content: json.RawMessage(`{"codename":"x"}`)}, `{"codename":"x"}`},
		{"empty body", llm.MockText(""), GarbledReply},
		{"whitespace body", llm.MockText(" \n\t"), GarbledReply},
		{"no content", llm.MockResponse{}, GarbledReply},
		{"rate limited", llm.MockError(&llm.ErrRateLimit{Err: errors.New("429")}), SeveredReply},
		{"unavailable", llm.MockError(&llm.ErrProviderUnavailable{Err: errors.New("503")}), SeveredReply},
		{"invalid", llm.MockError(&llm.ErrInvalidResponse{Err: errors.New("bad")}), SeveredReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(llm.NewMockProvider(tt.resp), time.Second, nil)
			assert.Equal(t, tt.want, svc.Ask(context.Background(), "prompt", MentorPersona))
		})
	}
}

func TestAsk_SendsPersonaAndPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("ok"))
	svc := New(mock, time.Second, nil)

	svc.Ask(context.Background(), "how do I bypass a pressure plate?", MentorPersona)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, MentorPersona, calls[0].System)
	require.Len(t, calls[0].Messages, 1)
	assert.Equal(t, llm.RoleUser, calls[0].Messages[0].Role)
	assert.Equal(t, "how do I bypass a pressure plate?", calls[0].Messages[0].Content)
	assert.Nil(t, calls[0].Schema)
}

func TestAsk_NilProvider(t *testing.T) {
	svc := New(nil, 0, nil)
	assert.False(t, svc.Available())
	assert.Equal(t, SeveredReply, svc.Ask(context.Background(), "anyone?", MentorPersona))

	var nilSvc *Service
	assert.Equal(t, SeveredReply, nilSvc.Ask(context.Background(), "anyone?", MentorPersona))
}

func TestAsk_EmptyQueueIsSevered(t *testing.T) {
	svc := New(llm.NewMockProvider(), time.Second, nil)
	assert.Equal(t, SeveredReply, svc.Ask(context.Background(), "x", MentorPersona))
}

func TestAsk_CancelledContext(t *testing.T) {
	svc := New(llm.NewMockProvider(llm.MockText("too late")), time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, SeveredReply, svc.Ask(ctx, "x", MentorPersona))
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestAsk_Timeout(t *testing.T) {
	svc := New(slowProvider{}, 20*time.Millisecond, nil)

	start := time.Now()
	got := svc.Ask(context.Background(), "x", MentorPersona)
	assert.Equal(t, SeveredReply, got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNew_DefaultTimeout(t *testing.T) {
	svc := New(nil, 0, nil)
	assert.Equal(t, DefaultTimeout, svc.timeout)
}
