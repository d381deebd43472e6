package claude

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestEncodeDirName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/Users/evan/foo", "-Users-evan-foo"},
		{"/", "-"},
		{"/home/dev/project", "-home-dev-project"},
	}
	for _, tt := range tests {
		if got := EncodeDirName(tt.path); got != tt.want {
			t.Errorf("EncodeDirName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDecodeDirName(t *testing.T) {
	tests := []struct {
		dir      string
		wantName string
		wantPath string
	}{
		{"-Users-evan-foo", "foo", "/Users/evan/foo"},
		{"-home-dev-project", "project", "/home/dev/project"},
		{"relative-path", "path", "relative/path"},
	}
	for _, tt := range tests {
		name, path := DecodeDirName(tt.dir)
		if name != tt.wantName || path != tt.wantPath {
			t.Errorf("DecodeDirName(%q) = (%q, %q), want (%q, %q)",
				tt.dir, name, path, tt.wantName, tt.wantPath)
		}
	}
}

// Encoding substitutes "/" with "-", so decoding is its inverse exactly for
// paths whose segments carry no "-" of their own.
func TestDirNameRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segs := rapid.SliceOfN(
			rapid.StringMatching(`[a-zA-Z0-9_.]{1,12}`), 1, 6,
		).Draw(t, "segments")
		path := "/" + strings.Join(segs, "/")

		_, got := DecodeDirName(EncodeDirName(path))
		if got != path {
			t.Fatalf("round trip of %q produced %q", path, got)
		}
	})
}
