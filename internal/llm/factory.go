package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/shadowmaster/internal/logging"
)

// NewProvider builds the configured provider wrapped as
// caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, rec Recorder, log *logging.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, rec, log)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv uses the SHADOW_* configuration when
// SHADOW_LLM_PROVIDER is set and falls back to key discovery otherwise.
// It returns ErrNotConfigured when neither yields a provider.
func NewProviderFromEnv(ctx context.Context, rec Recorder, log *logging.Logger) (Provider, error) {
	if os.Getenv(EnvPrefix+"LLM_PROVIDER") != "" {
		cfg, err := ConfigFromEnv()
		if err != nil {
			return nil, err
		}
		return NewProvider(ctx, cfg, rec, log)
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, ErrNotConfigured
	}
	return NewProvider(ctx, cfg, rec, log)
}
