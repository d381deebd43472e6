// Package claude reads Claude Code's on-disk session storage:
// ~/.claude/projects/<encoded-path>/<session-id>.jsonl, one append-only
// JSONL transcript per session.
package claude

import (
	"os"
	"path/filepath"
	"strings"
)

// TranscriptExt is the file extension of session transcripts.
const TranscriptExt = ".jsonl"

// DefaultProjectsDir returns the default storage root (~/.claude/projects).
func DefaultProjectsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude", "projects"), nil
}

// EncodeDirName converts a project path to its storage directory name by
// substituting "/" with "-", e.g. "/Users/evan/foo" → "-Users-evan-foo".
func EncodeDirName(path string) string {
	return strings.ReplaceAll(path, "/", "-")
}

// DecodeDirName reverses EncodeDirName, converting a storage directory name
// back to a display name and full project path,
// e.g. "-Users-evan-foo" → ("foo", "/Users/evan/foo").
func DecodeDirName(dirName string) (displayName string, fullPath string) {
	if dirName == "-" {
		return "~", ""
	}

	// Leading "-" maps to "/"
	if strings.HasPrefix(dirName, "-") {
		fullPath = "/" + strings.ReplaceAll(dirName[1:], "-", "/")
	} else {
		fullPath = strings.ReplaceAll(dirName, "-", "/")
	}

	displayName = filepath.Base(fullPath)
	return displayName, fullPath
}
