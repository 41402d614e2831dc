package history

import (
	"sync"

	"budaya-aceh-be/pkg/llm"
)

// Memory is the append-only conversation log for the chat capability.
//
// There is exactly one Memory per process and every caller of the chat
// endpoint shares it: this mirrors the single-tenant behavior of the
// deployment it models, and concurrent callers WILL observe each other's
// turns. The mutex only guarantees that individual appends do not
// interleave, not any ordering across logical conversations.
type Memory struct {
	mu    sync.Mutex
	turns []llm.Message
}

func NewMemory() *Memory {
	return &Memory{}
}

// Append records one turn. Turns are never mutated or removed for the
// lifetime of the process.
func (m *Memory) Append(role, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, llm.Message{Role: role, Content: text})
}

// History returns a snapshot of all recorded turns in order.
func (m *Memory) History() []llm.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]llm.Message, len(m.turns))
	copy(out, m.turns)
	return out
}

// Len reports the number of recorded turns.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}
