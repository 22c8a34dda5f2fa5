package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TelegramTokenStep collects the Telegram bot token. Empty skips the
// Telegram transport entirely.
type TelegramTokenStep struct {
	input textinput.Model
}

func NewTelegramTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:ABCDEF..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &TelegramTokenStep{input: ti}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramTokenStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		state.Env.TelegramToken = s.input.Value()
		state.Env.EnableTelegram = state.Env.TelegramToken != ""
		return nil, nil
	}
	return s, cmd
}

func (s *TelegramTokenStep) View(state *InstallState) string {
	return "Enter your Telegram Bot Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, empty disables Telegram)\n"
}
