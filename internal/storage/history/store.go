package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/internal/storage/sqlite"
	"github.com/sandevgo/askbot/pkg/log"
)

// Store is the conversation history log. It selects one backend at
// construction (durable SQLite by path, durable SQLite by DSN, or in-memory)
// and converts every backend failure to the boolean/empty-window contract:
// losing a history line must never abort a user-facing turn.
type Store struct {
	backend   core.HistoryBackend
	db        *sql.DB
	keepCount int

	// key generation guard; keys must be strictly increasing even when the
	// clock ties on the same microsecond.
	mu      sync.Mutex
	lastKey string
}

// New selects the backend by priority: database path, then DSN, then memory.
// A durable backend that fails to open or migrate triggers a permanent
// fallback to memory for the lifetime of the store; the durable backend is
// never retried.
func New(ctx context.Context, cfg *config.StorageConfig) *Store {
	logger := log.FromCtx(ctx)

	s := &Store{keepCount: cfg.KeepCount}

	switch {
	case cfg.DBPath != "":
		db, err := sqlite.NewDB(ctx, cfg.DBPath)
		if err != nil {
			logger.Error().Err(err).Str("path", cfg.DBPath).Msg("failed to open history database, falling back to memory")
			break
		}
		logger.Info().Str("path", cfg.DBPath).Msg("using sqlite history backend")
		s.db = db
		s.backend = sqlite.NewHistoryRepo(db)
	case cfg.DSN != "":
		db, err := sqlite.NewDBFromDSN(ctx, cfg.DSN)
		if err != nil {
			logger.Error().Err(err).Msg("failed to open history database from DSN, falling back to memory")
			break
		}
		logger.Info().Msg("using sqlite history backend (DSN)")
		s.db = db
		s.backend = sqlite.NewHistoryRepo(db)
	default:
		logger.Warn().Msg("no history storage configured, using in-memory backend")
	}

	if s.backend == nil {
		s.backend = newMemoryBackend(memoryLimit)
	}
	return s
}

func newWithBackend(backend core.HistoryBackend, keepCount int) *Store {
	return &Store{backend: backend, keepCount: keepCount}
}

// Append writes one turn under a freshly generated timestamp key and then
// runs a best-effort retention pass. Failures are swallowed and logged.
func (s *Store) Append(ctx context.Context, conversationID, role, content string) bool {
	logger := log.FromCtx(ctx)

	turn := core.Turn{Role: role, Content: content, Timestamp: s.nextKey()}
	if err := s.backend.Append(ctx, conversationID, turn); err != nil {
		logger.Error().Err(err).Str("conversation", conversationID).Msg("failed to append history turn")
		return false
	}

	if err := s.backend.Trim(ctx, conversationID, s.keepCount); err != nil {
		logger.Warn().Err(err).Str("conversation", conversationID).Msg("history retention pass failed")
	}
	return true
}

// Read returns at most maxMessages most-recent turns in ascending timestamp
// order. Any backend failure yields an empty window.
func (s *Store) Read(ctx context.Context, conversationID string, maxMessages int) []core.Turn {
	turns, err := s.backend.Read(ctx, conversationID, maxMessages)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("conversation", conversationID).Msg("failed to read history")
		return nil
	}
	return turns
}

func (s *Store) Clear(ctx context.Context, conversationID string) bool {
	if err := s.backend.Clear(ctx, conversationID); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("conversation", conversationID).Msg("failed to clear history")
		return false
	}
	log.FromCtx(ctx).Info().Str("conversation", conversationID).Msg("cleared conversation history")
	return true
}

// Stats is a read-only diagnostic aggregate, never on the hot path.
func (s *Store) Stats(ctx context.Context, conversationID string) core.HistoryStats {
	stats, err := s.backend.Stats(ctx, conversationID)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("conversation", conversationID).Msg("failed to read history stats")
		return core.HistoryStats{StorageKind: "error"}
	}
	return stats
}

func (s *Store) Kind() string {
	return s.backend.Kind()
}

// Close releases the durable backend, if one was selected.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// nextKey generates a sortable UTC timestamp key with microsecond precision,
// bumped by one when the clock has not advanced since the previous key.
func (s *Store) nextKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	key := now.Format("20060102150405") + fmt.Sprintf("%06d", now.Nanosecond()/1000)
	if key <= s.lastKey {
		key = bumpKey(s.lastKey)
	}
	s.lastKey = key
	return key
}

// bumpKey increments a decimal digit string by one.
func bumpKey(key string) string {
	b := []byte(key)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
