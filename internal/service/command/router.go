package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/askbot/internal/core"
)

// Router matches a fixed command set case-insensitively, either as an exact
// bare word ("help", "HELP") or as a leading slash token ("/help", "/clear
// now"). Anything else falls through to the query path, unknown slash
// tokens included.
type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands: make(map[string]core.Command),
	}

	for _, cmd := range commands {
		c.commands[strings.ToLower(cmd.Name())] = cmd
	}
	return c
}

func (c *Router) Execute(ctx context.Context, conversationID, input string) (string, bool) {
	name, args, ok := c.match(input)
	if !ok {
		return "", false
	}

	cmd := c.commands[name]
	result, err := cmd.Execute(ctx, conversationID, args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return result, true
}

func (c *Router) match(input string) (string, []string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", nil, false
	}

	if strings.HasPrefix(trimmed, "/") {
		parts := strings.Fields(trimmed)
		name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
		if _, ok := c.commands[name]; !ok {
			return "", nil, false
		}
		return name, parts[1:], true
	}

	// Bare words only match as the whole message.
	name := strings.ToLower(trimmed)
	if _, ok := c.commands[name]; !ok {
		return "", nil, false
	}
	return name, nil, true
}

func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	return res
}
