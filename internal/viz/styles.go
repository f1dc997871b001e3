package viz

import "github.com/charmbracelet/lipgloss"

var (
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true)

	Warn = lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Bold(true)
)
