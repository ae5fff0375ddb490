package mail

import (
	"context"
	"sync"
)

// MemorySender records messages instead of delivering them.
type MemorySender struct {
	mu       sync.Mutex
	name     string
	messages []Message
	Err      error
}

func NewMemorySender(name string) *MemorySender {
	return &MemorySender{name: name}
}

func (m *MemorySender) Name() string { return m.name }

func (m *MemorySender) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.messages = append(m.messages, msg)
	return nil
}

// Messages returns a copy of the recorded messages.
func (m *MemorySender) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.messages...)
}
