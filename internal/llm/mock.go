package llm

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var errMockExhausted = errors.New("mock session has no queued replies")

// MockReply is a canned reply for the MockSession.
type MockReply struct {
	Text string
	Err  error
}

// MockSession is a deterministic Session for tests and offline runs.
// It returns canned replies in FIFO order and records every message.
type MockSession struct {
	mu      sync.Mutex
	id      string
	replies []MockReply
	Calls   []string
}

func NewMockSession(replies ...MockReply) *MockSession {
	return &MockSession{id: uuid.NewString(), replies: replies}
}

// SendMessage returns the next canned reply or ErrProviderUnavailable if the
// queue is empty.
func (m *MockSession) SendMessage(_ context.Context, text string) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, text)

	if len(m.replies) == 0 {
		return nil, &ErrProviderUnavailable{Provider: ProviderMock, Err: errMockExhausted}
	}

	r := m.replies[0]
	m.replies = m.replies[1:]

	if r.Err != nil {
		return nil, r.Err
	}
	return &Reply{Text: r.Text, Model: ProviderMock}, nil
}

func (m *MockSession) ID() string { return m.id }

func (m *MockSession) Provider() string { return ProviderMock }

// AddReply appends a canned reply to the queue.
func (m *MockSession) AddReply(r MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
}

// CallCount returns the number of SendMessage calls made.
func (m *MockSession) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
