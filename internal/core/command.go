package core

import "context"

type CmdRouter interface {
	// Execute runs the command matching input, if any. The second return
	// reports whether the input was consumed as a command.
	Execute(ctx context.Context, conversationID, input string) (string, bool)
	ListCommands() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, conversationID string, args []string) (string, error)
}
