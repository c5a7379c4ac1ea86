package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	statusStyle  = lipgloss.NewStyle().Italic(true)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedStyle = panelStyle.BorderForeground(lipgloss.Color("212"))

	grantedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	deniedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	publicStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)
