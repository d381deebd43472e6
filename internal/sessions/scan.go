// Package sessions is the discovery core of claude-sessions: it finds live
// assistant-CLI processes, merges them with the saved transcripts indexed
// from disk, and produces the ordered snapshots the terminal views render.
package sessions

import (
	"strconv"
	"strings"
	"time"
)

// RunState is the OS-reported run state of a live session process.
type RunState int

const (
	StateOther RunState = iota
	StateRunning
	StateIdle
	StateIOWait
	StateStopped
	StateZombie
)

// LiveSession is one running assistant-CLI process. Scans re-create these
// every tick; they are never mutated in place.
type LiveSession struct {
	PID        int
	WorkingDir string // empty when the process vanished before the cwd read
	TTY        string // controlling terminal, empty when detached
	StartedAt  time.Time
	State      RunState
	Argv       []string
}

// ResumeTarget returns the session identifier a process's command line is
// resuming, or "" when it carries no resume flag. The identifier is the
// token following --resume or -r.
func ResumeTarget(argv []string) string {
	for i, arg := range argv {
		if (arg == "--resume" || arg == "-r") && i+1 < len(argv) {
			return argv[i+1]
		}
	}
	return ""
}

// parsePS parses `ps -axo pid=,tty=,state=,etimes=,args=` output, one
// process per line. Lines that do not parse are skipped; ps output can be
// ragged when processes die mid-enumeration.
func parsePS(out []byte, now time.Time) []LiveSession {
	var procs []LiveSession
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		elapsed, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}

		procs = append(procs, LiveSession{
			PID:       pid,
			TTY:       normalizeTTY(fields[1]),
			State:     runStateOf(fields[2]),
			StartedAt: now.Add(-time.Duration(elapsed) * time.Second),
			Argv:      fields[4:],
		})
	}
	return procs
}

// normalizeTTY maps ps's "no terminal" markers to the empty string.
func normalizeTTY(tty string) string {
	switch tty {
	case "?", "??", "-":
		return ""
	}
	return tty
}

// runStateOf maps a ps state code (possibly with flag suffixes like "Ss+")
// to a RunState.
func runStateOf(code string) RunState {
	if code == "" {
		return StateOther
	}
	switch code[0] {
	case 'R':
		return StateRunning
	case 'S', 'I':
		return StateIdle
	case 'D', 'U': // uninterruptible wait; 'U' on BSD-style ps
		return StateIOWait
	case 'T':
		return StateStopped
	case 'Z':
		return StateZombie
	}
	return StateOther
}
