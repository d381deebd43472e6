package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/kyupid/claude-sessions/internal/i18n"
	"github.com/kyupid/claude-sessions/internal/sessions"
)

// PrintSessionList writes the numbered most-recent-first session table.
func PrintSessionList(w io.Writer, saved []sessions.SavedEntry) {
	if len(saved) == 0 {
		fmt.Fprintln(w, i18n.T("list.none", "No saved sessions found"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range saved {
		summary := s.Summary
		if summary == "" {
			summary = shortID(s.ID)
		}
		live := ""
		if s.Live {
			live = "● " + i18n.T("browser.live", "live")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			summary,
			homeRelative(s.WorkingDir),
			i18n.RelativeTimeShort(s.LastActivity),
			live,
		)
	}
	tw.Flush()
}

// PromptSelect writes the selection prompt to promptW (stderr, so a piped
// table stays clean) and reads a 1-based choice from r. An empty line
// cancels, returning 0 and no error.
func PromptSelect(r io.Reader, promptW io.Writer, n int) (int, error) {
	fmt.Fprint(promptW, i18n.Tf("list.prompt", "Session number (1-%d, empty cancels): ", n))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return 0, nil // EOF before any input counts as cancel
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 0, nil
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid session number: %q", line)
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("invalid session number: %d (have %d sessions)", choice, n)
	}
	return choice, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

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
