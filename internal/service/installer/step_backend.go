package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultBackendURL = "http://localhost:50505"

// BackendURLStep collects the RAG backend base URL.
type BackendURLStep struct {
	input textinput.Model
}

func NewBackendURLStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 50
	ti.Placeholder = defaultBackendURL

	return &BackendURLStep{input: ti}
}

func (s *BackendURLStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *BackendURLStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		url := s.input.Value()
		if url == "" {
			url = defaultBackendURL
		}
		state.Env.BackendURL = url
		return nil, nil
	}
	return s, cmd
}

func (s *BackendURLStep) View(state *InstallState) string {
	return "Where is your RAG backend running?\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, empty keeps the default)\n"
}
