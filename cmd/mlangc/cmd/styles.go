package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for mlangc terminal output
var (
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorInfo    = lipgloss.Color("#06B6D4") // Cyan
)

// Output styles
var (
	headingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	tokenTypeStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Bold(true)
)

// render applies a style unless colored output is disabled
func render(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
