package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E6E6E6"}
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#FF3B3B")
	errorFg   = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	errorStyle = boxStyle.BorderForeground(errorFg)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	errTitle   = lipgloss.NewStyle().Foreground(errorFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)
