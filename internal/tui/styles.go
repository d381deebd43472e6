package tui

import "charm.land/lipgloss/v2"

// Styles holds the computed lipgloss styles shared by the monitor and the
// browser.
type Styles struct {
	Title  lipgloss.Style
	Frame  lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Footer lipgloss.Style

	StateGood lipgloss.Style // running
	StateIdle lipgloss.Style // sleeping, I/O wait
	StateBad  lipgloss.Style // stopped, zombie

	LiveMarker lipgloss.Style
}

var styles = Styles{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9d7aff")),
	Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Header: lipgloss.NewStyle().Bold(true),
	Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),

	StateGood: lipgloss.NewStyle().Foreground(lipgloss.Color("#7fcc5a")),
	StateIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("#e5c07b")),
	StateBad:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")),

	LiveMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("#7fcc5a")),
}

// GetStyles returns the shared styles.
func GetStyles() *Styles {
	return &styles
}
