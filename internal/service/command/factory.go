package command

import (
	"github.com/sandevgo/askbot/internal/core"
)

func NewCommands(store HistoryStore) []core.Command {
	return []core.Command{
		NewHelpCommand(),
		NewStartCommand(),
		NewClearCommand(store),
		NewStatsCommand(store),
	}
}
