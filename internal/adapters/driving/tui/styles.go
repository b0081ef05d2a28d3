package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains pre-configured lipgloss styles for the browser.
type Styles struct {
	// Title style for the header line.
	Title lipgloss.Style

	// Normal style for regular list rows.
	Normal lipgloss.Style

	// Selected style for the highlighted row.
	Selected lipgloss.Style

	// Muted style for secondary text.
	Muted lipgloss.Style

	// Detail style for the detail pane border.
	Detail lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style
}

// DefaultStyles returns the default styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#06B6D4")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
	}
}
