package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockReply is one scripted answer. Err wins over JSON.
type MockReply struct {
	JSON   json.RawMessage
	Tokens Tokens
	Err    error
}

// MockProvider replays scripted replies in order and keeps every prompt it
// was sent. Replies are checked against the prompt's schema like a real
// provider's would be.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	prompts []Prompt
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Model() string { return "mock" }

func (m *MockProvider) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, p)
	if len(m.replies) == 0 {
		return nil, &Error{Kind: KindUnavailable, Provider: "mock", Err: errors.New("no scripted replies left")}
	}
	r := m.replies[0]
	m.replies = m.replies[1:]

	if r.Err != nil {
		return nil, r.Err
	}
	if err := checkReply("mock", p, r.JSON); err != nil {
		return nil, err
	}
	return &Completion{JSON: r.JSON, Model: "mock", Tokens: r.Tokens}, nil
}

// Queue appends replies to the script.
func (m *MockProvider) Queue(replies ...MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

// Prompts returns a copy of the prompts received so far.
func (m *MockProvider) Prompts() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Prompt(nil), m.prompts...)
}
