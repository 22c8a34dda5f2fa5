package command

import (
	"context"

	"github.com/sandevgo/askbot/internal/core"
)

// StartCommand greets a new chat. Telegram sends /start on first contact.
type StartCommand struct {
	formatter *ResponseFormatter
}

func NewStartCommand() *StartCommand {
	return &StartCommand{formatter: NewResponseFormatter()}
}

func (c *StartCommand) Name() string {
	return "start"
}

func (c *StartCommand) Description() string {
	return "Show the welcome message"
}

func (c *StartCommand) Execute(ctx context.Context, conversationID string, args []string) (string, error) {
	f := c.formatter
	return f.Combine(
		f.Section("👋", "Welcome to "+core.BotName, "I search your document base and answer with sources."),
		"Ask me anything, or send `/help` to see what I can do.",
	), nil
}
