package ui

import "github.com/charmbracelet/lipgloss"

// ANSI palette so the help output reads well on any terminal theme.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
