package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/kyupid/claude-sessions/internal/i18n"
	"github.com/kyupid/claude-sessions/internal/sessions"
)

// dirBudget is the display budget for working-directory cells.
const dirBudget = 50

// homeRelative replaces the user's home-directory prefix with "~".
func homeRelative(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || path == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}

// shortenPath truncates a path to max display cells, keeping the tail; the
// end of a path carries the project name, so the head is what gets cut.
func shortenPath(path string, max int) string {
	if ansi.StringWidth(path) <= max {
		return path
	}
	runes := []rune(path)
	if max <= 3 {
		return string(runes[len(runes)-max:])
	}
	return "..." + string(runes[len(runes)-(max-3):])
}

// padCell right-pads a possibly styled cell to width display cells.
// Styled text makes len() useless here, so width is measured with ansi.
func padCell(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// formatUptime renders a process age as "Xd Yh", "Xh Ym", or "Xm".
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	switch {
	case mins >= 24*60:
		return fmt.Sprintf("%dd %dh", mins/(24*60), (mins%(24*60))/60)
	case mins >= 60:
		return fmt.Sprintf("%dh %dm", mins/60, mins%60)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// terminalLabel strips the /dev/ prefix from a controlling terminal and
// shows "-" for detached processes.
func terminalLabel(tty string) string {
	if tty == "" {
		return "-"
	}
	return strings.TrimPrefix(tty, "/dev/")
}

// stateLabel renders a run state as its styled column label.
func stateLabel(state sessions.RunState) string {
	s := GetStyles()
	switch state {
	case sessions.StateRunning:
		return s.StateGood.Render(i18n.T("state.running", "Running"))
	case sessions.StateIdle:
		return s.StateIdle.Render(i18n.T("state.idle", "Idle"))
	case sessions.StateIOWait:
		return s.StateIdle.Render(i18n.T("state.iowait", "I/O Wait"))
	case sessions.StateStopped:
		return s.StateBad.Render(i18n.T("state.stopped", "Stopped"))
	case sessions.StateZombie:
		return s.StateBad.Render(i18n.T("state.zombie", "Zombie"))
	}
	return i18n.T("state.other", "Other")
}
