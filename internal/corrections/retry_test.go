package corrections

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Triples: []Triple{{Example: "à le", Suggestion: "au"}}},
	)
	p := WithRetry(mock, retryConfig())

	triples, err := p.Corrections(context.Background(), "Je vais à le parc.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(triples) != 1 || triples[0].Suggestion != "au" {
		t.Fatalf("unexpected triples: %+v", triples)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Triples: []Triple{{Example: "à le", Suggestion: "au"}}},
	)
	p := WithRetry(mock, retryConfig())

	triples, err := p.Corrections(context.Background(), "Je vais à le parc.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(triples) != 1 {
		t.Fatalf("unexpected triples: %+v", triples)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Corrections(context.Background(), "Bonjour.")
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
		MockResult{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
		MockResult{Triples: []Triple{}}, // Won't be reached.
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Corrections(context.Background(), "Bonjour.")
	if err == nil {
		t.Fatal("expected error")
	}
	// Should have retried once (2 calls total), then stopped.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Triples: []Triple{}},
	)
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	_, err := p.Corrections(ctx, "Bonjour.")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResult{Triples: []Triple{{Example: "à le", Suggestion: "au"}}},
	)
	p := WithRetry(mock, retryConfig())

	triples, err := p.Corrections(context.Background(), "Je vais à le parc.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(triples) != 1 {
		t.Fatalf("unexpected triples: %+v", triples)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	mock := NewMockProvider()
	p := WithRetry(mock, retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
