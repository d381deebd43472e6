package sessions

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kyupid/claude-sessions/internal/claude"
)

// Handoff describes how to replace this process with the assistant CLI
// resuming a session. Building one has no side effects; the command
// dispatcher performs PrepareDir and Exec as the very last statements of
// the program.
type Handoff struct {
	Command string   // absolute path to the assistant binary
	Args    []string // argv, including argv[0]
	Dir     string   // project directory to resume from (empty = current)
}

// NewHandoff resolves the assistant binary on PATH and builds the resume
// invocation for a saved session.
func NewHandoff(processName string, session claude.Session) (*Handoff, error) {
	bin, err := exec.LookPath(processName)
	if err != nil {
		return nil, fmt.Errorf("%s CLI not found: %w", processName, err)
	}
	return &Handoff{
		Command: bin,
		Args:    []string{processName, "--resume", session.ID},
		Dir:     session.WorkingDir,
	}, nil
}

// PrepareDir attempts to enter the handoff directory. Failure is not fatal:
// the resume still works from the current directory, so callers report the
// error and proceed.
func (h *Handoff) PrepareDir() error {
	if h.Dir == "" {
		return nil
	}
	return os.Chdir(h.Dir)
}
