// Package cli provides the non-TUI surface: the terminal capability check
// and the static numbered-list fallback used when no interactive UI is
// available.
package cli

import (
	"os"

	"golang.org/x/term"
)

// ViewMode says which presentation the command dispatch should use. It is
// decided once at startup and threaded through the commands instead of
// re-probing the terminal at each call site.
type ViewMode int

const (
	// StaticListView prints plain tables, optionally with a selection prompt.
	StaticListView ViewMode = iota
	// InteractiveView runs the full-screen terminal UI.
	InteractiveView
)

// DetectViewMode probes stdin and stdout. The interactive UI needs both: a
// piped stdout means the output is being consumed by a program, a piped
// stdin means there is no keyboard.
func DetectViewMode() ViewMode {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return InteractiveView
	}
	return StaticListView
}

// CanPrompt reports whether a selection prompt can read from stdin. A list
// piped to a file still prompts on the terminal; a fully scripted run must
// not block on input.
func CanPrompt() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
