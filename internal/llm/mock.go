package llm

import (
	"context"
	"sync"
)

// MockOutcome is a canned outcome for the MockProvider.
type MockOutcome struct {
	Text  string
	Usage Usage
	Err   error
}

// MockProvider is a deterministic Provider for testing. It returns canned
// outcomes in FIFO order and records all requests.
type MockProvider struct {
	mu       sync.Mutex
	name     string
	outcomes []MockOutcome
	Calls    []Request
}

// NewMockProvider creates a MockProvider with the given canned outcomes.
func NewMockProvider(outcomes ...MockOutcome) *MockProvider {
	return &MockProvider{name: "mock", outcomes: outcomes}
}

// Named sets the provider name reported by Name and returns the mock,
// so tests can tell chain members apart.
func (m *MockProvider) Named(name string) *MockProvider {
	m.name = name
	return m
}

// Generate returns the next canned outcome or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.outcomes) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	out := m.outcomes[0]
	m.outcomes = m.outcomes[1:]

	if out.Err != nil {
		return nil, out.Err
	}

	return &Response{
		Text:       out.Text,
		Usage:      out.Usage,
		Model:      m.name,
		StopReason: "end",
	}, nil
}

// Name returns the mock's configured name ("mock" by default).
func (m *MockProvider) Name() string { return m.name }

// ModelID returns the mock's configured name.
func (m *MockProvider) ModelID() string { return m.name }

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
