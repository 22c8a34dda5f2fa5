package command

import (
	"context"
	"strconv"
)

// StatsCommand renders the conversation's diagnostic aggregate.
type StatsCommand struct {
	store     HistoryStore
	formatter *ResponseFormatter
}

func NewStatsCommand(store HistoryStore) *StatsCommand {
	return &StatsCommand{
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Show conversation statistics"
}

func (c *StatsCommand) Execute(ctx context.Context, conversationID string, args []string) (string, error) {
	stats := c.store.Stats(ctx, conversationID)

	f := c.formatter
	return f.Combine(
		f.Info("Conversation Stats"),
		f.Label("Messages", strconv.Itoa(stats.MessageCount)),
		f.Label("From you", strconv.Itoa(stats.UserMessages)),
		f.Label("From me", strconv.Itoa(stats.AssistantMessages)),
		f.Label("Storage", stats.StorageKind),
	), nil
}
