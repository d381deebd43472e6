//go:build !windows

package sessions

import "syscall"

// Exec replaces the current process image with the handoff command.
// On success, this function does not return.
func (h *Handoff) Exec() error {
	return syscall.Exec(h.Command, h.Args, syscall.Environ())
}
