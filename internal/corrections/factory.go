package corrections

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry middleware.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic, cfg.Request)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI, cfg.Request)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini, cfg.Request)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter, cfg.Request)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown correction provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(base, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from environment configuration.
// It falls back to DiscoverConfig when LIAISON_PROVIDER is unset and no
// LIAISON_* key matches the default provider.
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		if discovered, ok := DiscoverConfig(); ok {
			cfg = discovered
		} else {
			return nil, err
		}
	}
	return NewProvider(ctx, cfg)
}
