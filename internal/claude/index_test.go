package claude

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSession(t *testing.T, root, project, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, project)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIndex_MissingRoot(t *testing.T) {
	got, err := Index(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Index on missing root: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Index on missing root = %d sessions, want 0", len(got))
	}
}

func TestIndex_EmptyRoot(t *testing.T) {
	got, err := Index(t.TempDir())
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Index on empty root = %d sessions, want 0", len(got))
	}
}

func TestIndex_SingleSession(t *testing.T) {
	root := t.TempDir()
	writeSession(t, root, "-Users-evan-myproj", "27ac8015.jsonl",
		`{"type":"user","timestamp":"2024-01-01T00:00:00Z","message":{"role":"user","content":"hello world, please help me refactor this"}}`+"\n"+
			`{"type":"assistant","timestamp":"2024-01-01T00:05:00Z","message":{"role":"assistant","content":[{"type":"text","text":"sure"}]}}`+"\n")

	got, err := Index(root)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Index = %d sessions, want 1", len(got))
	}

	s := got[0]
	if s.ID != "27ac8015" {
		t.Errorf("ID = %q, want %q", s.ID, "27ac8015")
	}
	if !s.LastActivity.After(s.Created) {
		t.Errorf("LastActivity %v not after Created %v", s.LastActivity, s.Created)
	}
	if !strings.HasSuffix(s.Summary, "...") {
		t.Errorf("Summary = %q, want truncation ending in ellipsis", s.Summary)
	}
	if len([]rune(s.Summary)) > SummaryBudget {
		t.Errorf("Summary %q exceeds the %d character budget", s.Summary, SummaryBudget)
	}
}

func TestIndex_WorkingDirPrefersCwdField(t *testing.T) {
	root := t.TempDir()
	writeSession(t, root, "-Users-evan-myproj", "a.jsonl",
		`{"type":"user","timestamp":"2024-01-01T00:00:00Z","cwd":"/elsewhere/checkout","message":{"role":"user","content":"hi"}}`+"\n")

	got, err := Index(root)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Index = %d sessions, want 1", len(got))
	}
	if got[0].WorkingDir != "/elsewhere/checkout" {
		t.Errorf("WorkingDir = %q, want the record's cwd field", got[0].WorkingDir)
	}
}

func TestIndex_WorkingDirFallsBackToDirName(t *testing.T) {
	root := t.TempDir()
	writeSession(t, root, "-Users-evan-myproj", "a.jsonl",
		`{"type":"user","timestamp":"2024-01-01T00:00:00Z","message":{"role":"user","content":"hi"}}`+"\n")

	got, err := Index(root)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Index = %d sessions, want 1", len(got))
	}
	if got[0].WorkingDir != "/Users/evan/myproj" {
		t.Errorf("WorkingDir = %q, want %q", got[0].WorkingDir, "/Users/evan/myproj")
	}
}

func TestIndex_SkipsUnusableFiles(t *testing.T) {
	root := t.TempDir()
	writeSession(t, root, "-proj", "empty.jsonl", "")
	writeSession(t, root, "-proj", "garbage.jsonl", "this is not json\n")
	writeSession(t, root, "-proj", "no-timestamp.jsonl", `{"type":"user","message":{"content":"hi"}}`+"\n")
	writeSession(t, root, "-proj", "bad-timestamp.jsonl", `{"type":"user","timestamp":"yesterday","message":{"content":"hi"}}`+"\n")
	writeSession(t, root, "-proj", "good.jsonl",
		`{"type":"user","timestamp":"2024-06-01T10:00:00Z","message":{"role":"user","content":"ok"}}`+"\n")

	got, err := Index(root)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Index = %d sessions, want only the parsable one", len(got))
	}
	if got[0].ID != "good" {
		t.Errorf("ID = %q, want %q", got[0].ID, "good")
	}
}

func TestIndex_IgnoresNonTranscriptFiles(t *testing.T) {
	root := t.TempDir()
	writeSession(t, root, "-proj", "notes.txt", "not a transcript")
	if err := os.WriteFile(filepath.Join(root, "stray-file"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := Index(root)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Index = %d sessions, want 0", len(got))
	}
}

// A single-record transcript has the same head and tail; created must not
// exceed last activity.
func TestIndex_SingleRecordOrdering(t *testing.T) {
	root := t.TempDir()
	writeSession(t, root, "-proj", "one.jsonl",
		`{"type":"user","timestamp":"2024-06-01T10:00:00Z","message":{"role":"user","content":"only line"}}`+"\n")

	got, err := Index(root)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Index = %d sessions, want 1", len(got))
	}
	if got[0].LastActivity.Before(got[0].Created) {
		t.Errorf("LastActivity %v before Created %v", got[0].LastActivity, got[0].Created)
	}
}

func TestIndex_SummaryOnlyFromUserRecords(t *testing.T) {
	root := t.TempDir()
	writeSession(t, root, "-proj", "sum.jsonl",
		`{"type":"summary","timestamp":"2024-06-01T10:00:00Z","message":{"content":"machine summary"}}`+"\n")

	got, err := Index(root)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Index = %d sessions, want 1", len(got))
	}
	if got[0].Summary != "" {
		t.Errorf("Summary = %q, want empty for non-user first record", got[0].Summary)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 40, "short"},
		{"", 40, ""},
		{"hello world, please help me refactor this", 40, "hello world, please help me refactor..."},
		{"exactly-ten", 11, "exactly-ten"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
