package sessions

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve picks a session from the most-recent-first saved list. Numeric
// arguments are 1-based positions in that list; anything else matches a
// session-identifier prefix.
func Resolve(saved []SavedEntry, arg string) (*SavedEntry, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("session reference is required")
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(saved) {
			return nil, fmt.Errorf("invalid session number: %d (have %d sessions)", n, len(saved))
		}
		return &saved[n-1], nil
	}

	var matches []*SavedEntry
	for i := range saved {
		if strings.HasPrefix(saved[i].ID, arg) {
			matches = append(matches, &saved[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("session not found: %s", arg)
	case 1:
		return matches[0], nil
	default:
		var b strings.Builder
		b.WriteString("session reference is ambiguous, matched multiple sessions:\n")
		max := len(matches)
		if max > 5 {
			max = 5
		}
		for i := 0; i < max; i++ {
			fmt.Fprintf(&b, "  - %s\n", matches[i].ID)
		}
		if len(matches) > max {
			fmt.Fprintf(&b, "  ... and %d more", len(matches)-max)
		}
		return nil, fmt.Errorf("%s", strings.TrimSpace(b.String()))
	}
}
