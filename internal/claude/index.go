package claude

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// SummaryBudget is the character budget for session summaries.
const SummaryBudget = 40

// Session is a saved session reconstructed from a transcript file.
type Session struct {
	ID           string    // transcript file base name
	Path         string    // absolute transcript file path
	WorkingDir   string    // cwd of the first record, or the decoded dir name
	Created      time.Time // first record timestamp
	LastActivity time.Time // last record timestamp
	Summary      string    // first record's prompt text, truncated
}

// Index walks the storage root and reconstructs one Session per readable
// transcript. Transcripts that are empty, start with an unparsable record,
// or whose tail cannot be recovered are skipped; a missing root yields an
// empty result.
func Index(root string) ([]Session, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sessions []Session
	for _, projectDir := range entries {
		if !projectDir.IsDir() {
			continue
		}
		_, decodedPath := DecodeDirName(projectDir.Name())

		dirPath := filepath.Join(root, projectDir.Name())
		files, err := os.ReadDir(dirPath)
		if err != nil {
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), TranscriptExt) {
				continue
			}
			session, ok := indexTranscript(filepath.Join(dirPath, file.Name()), decodedPath)
			if !ok {
				continue
			}
			sessions = append(sessions, session)
		}
	}

	return sessions, nil
}

// indexTranscript reads only a transcript's first record and bounded tail to
// build a Session. ok is false when any required piece is missing or
// malformed; partial sessions are never emitted.
func indexTranscript(path, fallbackDir string) (Session, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Session{}, false
	}
	defer f.Close()

	head, err := firstLine(f)
	if err != nil || len(head) == 0 {
		return Session{}, false
	}
	first, err := parseEntry(head)
	if err != nil {
		return Session{}, false
	}
	created, err := first.Time()
	if err != nil {
		return Session{}, false
	}

	tail, err := lastLineWithin(f, TailWindow)
	if err != nil || len(tail) == 0 {
		return Session{}, false
	}
	last, err := parseEntry(tail)
	if err != nil {
		return Session{}, false
	}
	lastActivity, err := last.Time()
	if err != nil {
		return Session{}, false
	}
	// Records are chronological, so the tail never predates the head;
	// clamp anyway so consumers can rely on the ordering.
	if lastActivity.Before(created) {
		lastActivity = created
	}

	workingDir := first.CWD
	if workingDir == "" {
		workingDir = fallbackDir
	}

	return Session{
		ID:           strings.TrimSuffix(filepath.Base(path), TranscriptExt),
		Path:         path,
		WorkingDir:   workingDir,
		Created:      created,
		LastActivity: lastActivity,
		Summary:      TruncateString(first.PromptText(), SummaryBudget),
	}, true
}

// TruncateString truncates s to max characters, adding "..." if truncated.
// Truncation counts runes so multibyte prompts are never cut mid-character.
func TruncateString(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 3 {
		return string(runes[:max])
	}
	return strings.TrimRight(string(runes[:max-3]), " ") + "..."
}
