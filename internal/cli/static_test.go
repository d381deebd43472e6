package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/kyupid/claude-sessions/internal/claude"
	"github.com/kyupid/claude-sessions/internal/sessions"
)

func sampleEntries() []sessions.SavedEntry {
	base := time.Now().Add(-time.Hour)
	return []sessions.SavedEntry{
		{Session: claude.Session{ID: "aaa-111", Summary: "fix the build", WorkingDir: "/proj/one", LastActivity: base}, Live: true},
		{Session: claude.Session{ID: "bbb-222", Summary: "", WorkingDir: "/proj/two", LastActivity: base.Add(-time.Hour)}},
	}
}

func TestPrintSessionList(t *testing.T) {
	var buf strings.Builder
	PrintSessionList(&buf, sampleEntries())
	out := buf.String()

	if !strings.Contains(out, "1") || !strings.Contains(out, "fix the build") {
		t.Errorf("output missing first row:\n%s", out)
	}
	if !strings.Contains(out, "bbb-222") {
		t.Errorf("output should fall back to the session id when there is no summary:\n%s", out)
	}
	if !strings.Contains(out, "live") {
		t.Errorf("output missing live marker:\n%s", out)
	}
}

func TestPrintSessionList_Empty(t *testing.T) {
	var buf strings.Builder
	PrintSessionList(&buf, nil)
	if !strings.Contains(buf.String(), "No saved sessions") {
		t.Errorf("empty list output = %q", buf.String())
	}
}

func TestPromptSelect(t *testing.T) {
	var prompt strings.Builder
	got, err := PromptSelect(strings.NewReader("2\n"), &prompt, 3)
	if err != nil {
		t.Fatalf("PromptSelect: %v", err)
	}
	if got != 2 {
		t.Errorf("PromptSelect = %d, want 2", got)
	}
	if !strings.Contains(prompt.String(), "1-3") {
		t.Errorf("prompt = %q, want range hint", prompt.String())
	}
}

func TestPromptSelect_EmptyCancels(t *testing.T) {
	got, err := PromptSelect(strings.NewReader("\n"), &strings.Builder{}, 3)
	if err != nil || got != 0 {
		t.Errorf("PromptSelect on empty line = (%d, %v), want (0, nil)", got, err)
	}
}

func TestPromptSelect_EOFCancels(t *testing.T) {
	got, err := PromptSelect(strings.NewReader(""), &strings.Builder{}, 3)
	if err != nil || got != 0 {
		t.Errorf("PromptSelect on EOF = (%d, %v), want (0, nil)", got, err)
	}
}

func TestPromptSelect_NonNumeric(t *testing.T) {
	_, err := PromptSelect(strings.NewReader("two\n"), &strings.Builder{}, 3)
	if err == nil || !strings.Contains(err.Error(), "invalid session number") {
		t.Errorf("error = %v, want invalid-session-number", err)
	}
}

func TestPromptSelect_OutOfRange(t *testing.T) {
	_, err := PromptSelect(strings.NewReader("99\n"), &strings.Builder{}, 3)
	if err == nil || !strings.Contains(err.Error(), "invalid session number") {
		t.Errorf("error = %v, want invalid-session-number", err)
	}
}
