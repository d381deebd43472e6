package tui

import "charm.land/bubbles/v2/key"

// monitorKeyMap defines key bindings for the monitor page.
type monitorKeyMap struct {
	Quit    key.Binding
	Refresh key.Binding
}

func defaultMonitorKeyMap() monitorKeyMap {
	return monitorKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// browserKeyMap defines key bindings for the session browser.
type browserKeyMap struct {
	Select  key.Binding
	Quit    key.Binding
	Refresh key.Binding
}

func defaultBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}
