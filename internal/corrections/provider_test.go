package corrections

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResults(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Triples: []Triple{{Issue: "contraction", Example: "à le", Suggestion: "au"}}},
		MockResult{Triples: []Triple{}},
	)

	triples, err := mock.Corrections(context.Background(), "Je vais à le parc.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(triples) != 1 || triples[0].Example != "à le" {
		t.Fatalf("unexpected triples: %+v", triples)
	}

	triples, err = mock.Corrections(context.Background(), "Je vais au parc.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(triples) != 0 {
		t.Fatalf("expected no corrections, got %+v", triples)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Corrections(context.Background(), "Bonjour.")
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Triples: []Triple{}},
	)

	_, _ = mock.Corrections(context.Background(), "Elle mange une pomme.")

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0] != "Elle mange une pomme." {
		t.Fatalf("unexpected recorded text: %q", mock.Calls[0])
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Corrections(context.Background(), "Bonjour.")
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"claude-haiku": "claude-haiku-real-id"}
	if got := resolveModel("claude-haiku", models); got != "claude-haiku-real-id" {
		t.Fatalf("expected mapped ID, got %q", got)
	}
	if got := resolveModel("some-direct-id", models); got != "some-direct-id" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "test"}},
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
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

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("LIAISON_PROVIDER", "openai")
	t.Setenv("LIAISON_OPENAI_API_KEY", "sk-env")
	t.Setenv("LIAISON_OPENAI_MODEL", "gpt-4o")
	t.Setenv("LIAISON_OPENAI_BASE_URL", "http://localhost:1234/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("APIKey = %q, want sk-env", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:1234/v1" {
		t.Errorf("BaseURL = %q, want the override", cfg.OpenAI.BaseURL)
	}
	// Untouched sections keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("Anthropic.Model = %q, want claude-haiku", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENROUTER_API_KEY", "r")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini (highest priority)", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g" {
		t.Errorf("APIKey = %q, want g", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovered config")
	}
}
