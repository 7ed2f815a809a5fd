package llm

import (
	"context"
	"fmt"

	"sheetwise/internal/store"
)

// NewProvider builds the configured provider wrapped with retry and
// event-logging middleware (caller → retry → logging → vendor).
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, events), cfg.Retry, cfg.Timeout), nil
}

// NewProviderFromEnv builds a provider from config-file hints and
// SHEETWISE_* variables, falling back to standard vendor key discovery.
func NewProviderFromEnv(ctx context.Context, hints Hints, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv(hints)
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events)
}
