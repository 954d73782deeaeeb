package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// NewProvider builds the configured vendor adapter and stacks the
// decorators on it: a timeout around the retry loop, and an event per
// attempt. sink may be nil. The mock provider is returned bare.
func NewProvider(ctx context.Context, cfg Config, sink EventSink, logger *slog.Logger) (Provider, error) {
	if cfg.Provider == ProviderMock {
		return NewMockProvider(), nil
	}
	base, err := vendor(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p := WithLogging(base, cfg.Provider, sink, logger)
	p = WithRetry(p, cfg.Retry)
	return WithTimeout(p, cfg.Timeout), nil
}

func vendor(ctx context.Context, cfg Config) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case ProviderNone:
		return nil, errors.New("llm: no provider configured")
	case ProviderAnthropic:
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		p, err = NewOpenRouterProvider(cfg.OpenRouter)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("llm: %s: %w", cfg.Provider, err)
	}
	return p, nil
}
