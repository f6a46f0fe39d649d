package corrections

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockProvider.
type MockResult struct {
	Triples []Triple
	Err     error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned results in FIFO order and records all texts sent.
type MockProvider struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []string
}

// NewMockProvider creates a MockProvider with the given canned results.
func NewMockProvider(results ...MockResult) *MockProvider {
	return &MockProvider{results: results}
}

// Corrections returns the next canned result or ErrProviderUnavailable
// if the queue is empty.
func (m *MockProvider) Corrections(_ context.Context, text string) ([]Triple, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, text)

	if len(m.results) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	res := m.results[0]
	m.results = m.results[1:]

	if res.Err != nil {
		return nil, res.Err
	}
	return res.Triples, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResult appends a canned result to the queue.
func (m *MockProvider) AddResult(res MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// CallCount returns the number of Corrections calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
