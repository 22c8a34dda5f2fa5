package core

import "context"

// HistoryBackend is the storage strategy behind the history store.
// Two implementations exist: a durable SQLite table and an in-memory map.
// The choice is made once at construction and never leaks past it.
type HistoryBackend interface {
	Append(ctx context.Context, conversationID string, turn Turn) error
	Read(ctx context.Context, conversationID string, maxMessages int) ([]Turn, error)
	Clear(ctx context.Context, conversationID string) error
	Stats(ctx context.Context, conversationID string) (HistoryStats, error)
	// Trim drops the oldest turns beyond keep, by timestamp key order.
	// The in-memory backend bounds itself at append time and treats this as a no-op.
	Trim(ctx context.Context, conversationID string, keep int) error
	Kind() string
}

type HistoryStats struct {
	MessageCount      int    `json:"message_count"`
	UserMessages      int    `json:"user_messages"`
	AssistantMessages int    `json:"assistant_messages"`
	StorageKind       string `json:"storage_kind"`
}
