//go:build !windows

package sessions

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"time"
)

// Scan enumerates OS processes and returns the live sessions whose first
// command-line token equals processName, ordered by PID ascending.
// Processes that exit or become unreadable between enumeration and the
// attribute reads are silently skipped; those races happen on every tick.
func Scan(processName string) ([]LiveSession, error) {
	out, err := exec.Command("ps", "-axo", "pid=,tty=,state=,etimes=,args=").Output()
	if err != nil {
		return nil, fmt.Errorf("ps: %w", err)
	}

	var live []LiveSession
	for _, p := range parsePS(out, time.Now()) {
		if len(p.Argv) == 0 || p.Argv[0] != processName {
			continue
		}
		p.WorkingDir = processCwd(p.PID)
		live = append(live, p)
	}

	sort.Slice(live, func(i, j int) bool { return live[i].PID < live[j].PID })
	return live, nil
}

// processCwd returns the working directory of a process, or "" when the
// process is gone or not inspectable. On Linux this is a /proc readlink;
// elsewhere it falls back to lsof.
func processCwd(pid int) string {
	pidStr := strconv.Itoa(pid)

	if target, err := os.Readlink("/proc/" + pidStr + "/cwd"); err == nil {
		return target
	}

	out, err := exec.Command("lsof", "-a", "-p", pidStr, "-d", "cwd", "-Fn").Output()
	if err != nil {
		return ""
	}
	// lsof -Fn output: 'f' lines name descriptors, 'n' lines name paths.
	// The path we want is the 'n' line after "fcwd".
	foundCwd := false
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if line[0] == 'f' && string(line[1:]) == "cwd" {
			foundCwd = true
			continue
		}
		if foundCwd && line[0] == 'n' {
			return string(line[1:])
		}
	}
	return ""
}
