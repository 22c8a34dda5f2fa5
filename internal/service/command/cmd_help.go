package command

import (
	"context"

	"github.com/sandevgo/askbot/internal/core"
)

// HelpCommand renders the static instructions payload. It never touches the
// history store or the bridge.
type HelpCommand struct {
	formatter *ResponseFormatter
}

func NewHelpCommand() *HelpCommand {
	return &HelpCommand{formatter: NewResponseFormatter()}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show usage instructions"
}

func (c *HelpCommand) Execute(ctx context.Context, conversationID string, args []string) (string, error) {
	f := c.formatter
	return f.Combine(
		f.Section("🤖", core.BotName+" Help", "Ask me questions about your organizational documents!"),
		f.Section("💡", "Example questions", f.List([]string{
			"What's our vacation policy?",
			"Tell me about Q3 financial results",
			"How do I submit expense reports?",
		})),
		f.Section("⌨️", "Commands", f.List([]string{
			"`/help` shows this help",
			"`/clear` clears the conversation history",
			"`/stats` shows conversation statistics",
		})),
	), nil
}
