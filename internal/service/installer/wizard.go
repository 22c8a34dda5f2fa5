package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step is a single screen of the setup wizard. Returning a nil Step from
// Update signals completion and advances the wizard.
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd)
	View(state *InstallState) string
}

func getSteps() []Step {
	return []Step{
		NewBackendURLStep(),
		NewTelegramTokenStep(),
		NewStoragePathStep(),
		NewSaveEnvStep(),
	}
}

type errMsg error
type nextMsg struct{}

type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	err         error
}

func initialModel() model {
	return model{
		steps: getSteps(),
		state: NewInstallState(),
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 && m.steps[0] != nil {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.currentStep >= len(m.steps) {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state)
	if nextStep == nil {
		m.currentStep++
		if m.currentStep >= len(m.steps) {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	m.steps[m.currentStep] = nextStep
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(press ctrl+c to quit)\n"
	}

	if m.currentStep >= len(m.steps) {
		return "Configuration complete!\n"
	}

	return titleStyle.Render("Setting up AskBot 🔎") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard starts the TUI and returns the collected state.
func RunWizard() (*InstallState, error) {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.quitting {
		return nil, fmt.Errorf("askbot setup interrupted")
	}

	return finalModel.state, nil
}
