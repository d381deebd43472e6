package sessions

import (
	"sort"
	"time"

	"github.com/kyupid/claude-sessions/internal/claude"
)

// SavedEntry is a saved session annotated with whether some live process is
// currently resuming it.
type SavedEntry struct {
	claude.Session
	Live bool
}

// Snapshot is one immutable, fully-computed catalog view. The renderer only
// ever swaps whole snapshots; it is never shown a partially updated catalog.
type Snapshot struct {
	Seq     uint64 // monotonically increasing per Refresher
	TakenAt time.Time
	Saved   []SavedEntry  // last-activity descending, ties by ID
	Live    []LiveSession // PID ascending
}

// Merge cross-references saved sessions against the live processes' resume
// arguments and produces the ordered snapshot. Both inputs stay small (tens
// to low hundreds), so a plain map covers the liveness lookup.
func Merge(saved []claude.Session, live []LiveSession, seq uint64, takenAt time.Time) Snapshot {
	resumed := make(map[string]bool, len(live))
	for _, p := range live {
		if id := ResumeTarget(p.Argv); id != "" {
			resumed[id] = true
		}
	}

	entries := make([]SavedEntry, len(saved))
	for i, s := range saved {
		entries[i] = SavedEntry{Session: s, Live: resumed[s.ID]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].LastActivity.Equal(entries[j].LastActivity) {
			return entries[i].LastActivity.After(entries[j].LastActivity)
		}
		return entries[i].ID < entries[j].ID
	})

	procs := make([]LiveSession, len(live))
	copy(procs, live)
	sort.Slice(procs, func(i, j int) bool { return procs[i].PID < procs[j].PID })

	return Snapshot{Seq: seq, TakenAt: takenAt, Saved: entries, Live: procs}
}
