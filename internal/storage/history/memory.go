package history

import (
	"context"
	"sync"

	"github.com/sandevgo/askbot/internal/core"
)

// memoryLimit is the hard per-conversation bound the in-memory backend
// enforces directly at append time.
const memoryLimit = 20

// memoryBackend is the volatile fallback store: a mutex-guarded map of
// conversation id to turns. It is owned by the Store, never process-global.
type memoryBackend struct {
	mu    sync.Mutex
	turns map[string][]core.Turn
	limit int
}

func newMemoryBackend(limit int) *memoryBackend {
	return &memoryBackend{
		turns: make(map[string][]core.Turn),
		limit: limit,
	}
}

func (m *memoryBackend) Append(_ context.Context, conversationID string, turn core.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := append(m.turns[conversationID], turn)
	if len(turns) > m.limit {
		turns = turns[len(turns)-m.limit:]
	}
	m.turns[conversationID] = turns
	return nil
}

func (m *memoryBackend) Read(_ context.Context, conversationID string, maxMessages int) ([]core.Turn, error) {
	if maxMessages <= 0 {
		return []core.Turn{}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	turns := m.turns[conversationID]
	if len(turns) > maxMessages {
		turns = turns[len(turns)-maxMessages:]
	}

	out := make([]core.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (m *memoryBackend) Clear(_ context.Context, conversationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Reset to empty rather than deleting the key.
	m.turns[conversationID] = []core.Turn{}
	return nil
}

func (m *memoryBackend) Stats(_ context.Context, conversationID string) (core.HistoryStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := core.HistoryStats{StorageKind: m.Kind()}
	for _, turn := range m.turns[conversationID] {
		stats.MessageCount++
		switch turn.Role {
		case core.RoleUser:
			stats.UserMessages++
		case core.RoleAssistant:
			stats.AssistantMessages++
		}
	}
	return stats, nil
}

// Trim is a no-op: the append-time bound already caps growth.
func (m *memoryBackend) Trim(context.Context, string, int) error {
	return nil
}

func (m *memoryBackend) Kind() string {
	return "memory"
}
