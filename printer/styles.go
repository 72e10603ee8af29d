package printer

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorSuccess = lipgloss.Color("#10B981")
	colorAccent  = lipgloss.Color("#06B6D4")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	locationStyle = lipgloss.NewStyle().Bold(true)
	codeStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	gutterStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	caretStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
