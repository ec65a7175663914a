package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	todoNameStyle    = lipgloss.NewStyle().Bold(true)
	descriptionStyle = lipgloss.NewStyle().PaddingLeft(4)
	markerStyle      = lipgloss.NewStyle().Italic(true).Faint(true)
	selectedStyle    = lipgloss.NewStyle().Reverse(true)
	statusStyle      = lipgloss.NewStyle().Faint(true).Italic(true)
)
