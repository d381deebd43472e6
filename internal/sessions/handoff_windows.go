//go:build windows

package sessions

import (
	"os"
	"os/exec"
)

// Exec starts the handoff command and exits the current process.
// Windows does not support process replacement, so the child inherits the
// standard streams and the parent exits once it has started.
func (h *Handoff) Exec() error {
	cmd := exec.Command(h.Command, h.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return err
	}
	os.Exit(0)
	return nil // unreachable
}
