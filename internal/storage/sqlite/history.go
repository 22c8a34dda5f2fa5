package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/askbot/internal/core"
	"github.com/sandevgo/askbot/pkg/log"
)

// HistoryRepo is the durable history backend: one row per turn, partitioned
// by conversation id and keyed by the sortable timestamp string.
type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (h *HistoryRepo) Append(ctx context.Context, conversationID string, turn core.Turn) error {
	query := `INSERT INTO history (conversation_id, row_key, role, content, timestamp) VALUES (?, ?, ?, ?, ?)`
	_, err := h.db.ExecContext(ctx, query, conversationID, turn.Timestamp, turn.Role, turn.Content, turn.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert turn: %w", err)
	}
	return nil
}

func (h *HistoryRepo) Read(ctx context.Context, conversationID string, maxMessages int) ([]core.Turn, error) {
	// A negative LIMIT means "no limit" to sqlite; normalize to an empty window.
	if maxMessages <= 0 {
		return nil, nil
	}

	// Fetch the LAST maxMessages turns by ordering on the timestamp key DESC.
	query := `SELECT role, content, timestamp FROM history WHERE conversation_id = ? ORDER BY row_key DESC LIMIT ?`

	rows, err := h.db.QueryContext(ctx, query, conversationID, maxMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var turns []core.Turn
	for rows.Next() {
		var turn core.Turn
		var content sql.NullString

		if err := rows.Scan(&turn.Role, &content, &turn.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turn.Content = content.String
		turns = append(turns, turn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query returned turns newest-first; reverse back to chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(turns)).Msg("loaded history turns")
	return turns, nil
}

func (h *HistoryRepo) Clear(ctx context.Context, conversationID string) error {
	_, err := h.db.ExecContext(ctx, `DELETE FROM history WHERE conversation_id = ?`, conversationID)
	if err != nil {
		return fmt.Errorf("failed to clear conversation: %w", err)
	}
	return nil
}

func (h *HistoryRepo) Stats(ctx context.Context, conversationID string) (core.HistoryStats, error) {
	query := `SELECT role, COUNT(*) FROM history WHERE conversation_id = ? GROUP BY role`

	rows, err := h.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return core.HistoryStats{}, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	stats := core.HistoryStats{StorageKind: h.Kind()}
	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return core.HistoryStats{}, fmt.Errorf("failed to scan stats: %w", err)
		}

		stats.MessageCount += count
		switch role {
		case core.RoleUser:
			stats.UserMessages = count
		case core.RoleAssistant:
			stats.AssistantMessages = count
		}
	}
	if err := rows.Err(); err != nil {
		return core.HistoryStats{}, err
	}

	return stats, nil
}

// Trim deletes the oldest turns beyond keep, identified purely by the sort
// order of the timestamp key.
func (h *HistoryRepo) Trim(ctx context.Context, conversationID string, keep int) error {
	query := `DELETE FROM history
		WHERE conversation_id = ?
		AND row_key NOT IN (
			SELECT row_key FROM history WHERE conversation_id = ? ORDER BY row_key DESC LIMIT ?
		)`

	res, err := h.db.ExecContext(ctx, query, conversationID, conversationID, keep)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.FromCtx(ctx).Info().Int64("deleted", n).Str("conversation", conversationID).Msg("trimmed old history turns")
	}
	return nil
}

func (h *HistoryRepo) Kind() string {
	return "sqlite"
}
