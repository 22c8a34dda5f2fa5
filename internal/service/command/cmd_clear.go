package command

import (
	"context"

	"github.com/sandevgo/askbot/internal/core"
)

// HistoryStore is the slice of the history store commands operate on.
type HistoryStore interface {
	Clear(ctx context.Context, conversationID string) bool
	Stats(ctx context.Context, conversationID string) core.HistoryStats
}

// ClearCommand wipes the conversation history wholesale.
type ClearCommand struct {
	store     HistoryStore
	formatter *ResponseFormatter
}

func NewClearCommand(store HistoryStore) *ClearCommand {
	return &ClearCommand{
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Clear conversation history"
}

func (c *ClearCommand) Execute(ctx context.Context, conversationID string, args []string) (string, error) {
	if !c.store.Clear(ctx, conversationID) {
		return c.formatter.Failure("Couldn't clear the conversation history. Please try again."), nil
	}
	return c.formatter.Success("Conversation history cleared!"), nil
}
