// Package style centralizes the lipgloss styles for the terminal UI.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/darkpool/config"
)

// Styles holds every style the UI renders with.
type Styles struct {
	// Transcript text
	Text lipgloss.Style

	// Current line
	Prompt lipgloss.Style
	Cursor lipgloss.Style

	// Scrollback indicator and other low-emphasis chrome
	Muted lipgloss.Style
}

// New builds the style set from the configured theme.
func New(theme config.Theme) Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Prompt)),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Cursor)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
	}
}

// Default returns the styles for the stock theme.
func Default() Styles {
	return New(config.Default().Theme)
}
