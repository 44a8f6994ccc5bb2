package llm

import (
	"context"
	"fmt"
)

// NewSession opens a Session for the configured provider, wrapped with
// request logging.
func NewSession(ctx context.Context, cfg Config) (Session, error) {
	var base Session
	var err error

	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiSession(ctx, cfg.Gemini)
	case ProviderOpenAI:
		base, err = NewOpenAISession(cfg.OpenAI)
	case ProviderAnthropic:
		base, err = NewAnthropicSession(cfg.Anthropic)
	case ProviderMock:
		base = NewMockSession()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s session: %w", cfg.Provider, err)
	}

	return WithLogging(base), nil
}

// NewFactory returns a Factory that opens sessions from cfg.
func NewFactory(cfg Config) Factory {
	return func(ctx context.Context) (Session, error) {
		return NewSession(ctx, cfg)
	}
}
