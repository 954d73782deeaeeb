package llm

import (
	"context"
	"encoding/json"
	"sync"
)

const mockModel = "mock"

// MockResponse is one scripted reply of a MockProvider. A non-nil Err is
// returned instead of content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted responses in order and keeps every request
// it saw in Calls. An exhausted script answers with ErrProviderUnavailable.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: mockModel, StopReason: StopEnd}, nil
}

func (m *MockProvider) ModelID() string { return mockModel }

// AddResponse queues another scripted reply.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	m.script = append(m.script, resp)
	m.mu.Unlock()
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
