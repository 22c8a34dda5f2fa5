package installer

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/askbot/internal/config"
)

// StoragePathStep collects the history database path. Empty means the bot
// runs on its in-memory store and forgets history on restart.
type StoragePathStep struct {
	input textinput.Model
}

func NewStoragePathStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 50
	ti.Placeholder = filepath.Join(config.GetRuntimePath(), "askbot.db")

	return &StoragePathStep{input: ti}
}

func (s *StoragePathStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *StoragePathStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		path := s.input.Value()
		if path == "" {
			path = filepath.Join(config.GetRuntimePath(), "askbot.db")
		}
		state.Env.DBPath = path
		return nil, nil
	}
	return s, cmd
}

func (s *StoragePathStep) View(state *InstallState) string {
	return "Where should conversation history be stored?\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, empty keeps the default)\n"
}
