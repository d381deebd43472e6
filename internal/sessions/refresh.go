package sessions

import (
	"time"

	"github.com/kyupid/claude-sessions/internal/claude"
	"github.com/kyupid/claude-sessions/internal/tuilog"
)

// Refresher recomputes the catalog from disk and the process table. One
// refresher serves one view, and Refresh runs on that view's single event
// loop, so publishing the returned snapshot is a plain assignment on the
// caller's side.
type Refresher struct {
	Root        string // transcript storage root
	ProcessName string // assistant CLI executable name
	seq         uint64
}

// Refresh scans both sources and merges them into the next snapshot.
// Source failures degrade to an empty contribution instead of erroring:
// a missing storage root or an unreadable process table mean "nothing to
// show", not "stop the loop".
func (r *Refresher) Refresh() Snapshot {
	defer tuilog.Log.Timed("refresh")()

	saved, err := claude.Index(r.Root)
	if err != nil {
		tuilog.Log.Warn("transcript index failed", "root", r.Root, "error", err)
	}

	live, err := Scan(r.ProcessName)
	if err != nil {
		tuilog.Log.Warn("process scan failed", "error", err)
	}

	r.seq++
	snap := Merge(saved, live, r.seq, time.Now())
	tuilog.Log.Debug("snapshot published", "seq", snap.Seq, "saved", len(snap.Saved), "live", len(snap.Live))
	return snap
}
