package i18n

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

// TestLocaleSyntax ensures all embedded TOML locale files are
// syntactically valid.
func TestLocaleSyntax(t *testing.T) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		t.Fatalf("reading embedded locales: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no locale files embedded")
	}

	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".toml") {
			continue
		}

		t.Run(name, func(t *testing.T) {
			data, err := localeFS.ReadFile("locales/" + name)
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}

			var v map[string]interface{}
			if _, err := toml.Decode(string(data), &v); err != nil {
				t.Errorf("%s: invalid TOML syntax: %v", name, err)
			}
		})
	}
}

// TestLocaleKeysMatchEnglish catches translated keys that do not exist in
// en.toml (usually a typo in the translation file).
func TestLocaleKeysMatchEnglish(t *testing.T) {
	enKeys := localeKeys(t, "en.toml")

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		t.Fatalf("reading embedded locales: %v", err)
	}

	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".toml") || name == "en.toml" {
			continue
		}

		for key := range localeKeys(t, name) {
			if !enKeys[key] {
				t.Errorf("%s: key %q has no counterpart in en.toml", name, key)
			}
		}
	}
}

func localeKeys(t *testing.T, name string) map[string]bool {
	t.Helper()

	data, err := localeFS.ReadFile("locales/" + name)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}

	var v map[string]interface{}
	if _, err := toml.Decode(string(data), &v); err != nil {
		t.Fatalf("decoding %s: %v", name, err)
	}

	keys := make(map[string]bool)
	flattenKeys("", v, keys)
	return keys
}

// flattenKeys joins nested TOML tables into dotted message IDs, stopping at
// tables that hold plural forms (leaf string values).
func flattenKeys(prefix string, v map[string]interface{}, out map[string]bool) {
	for k, val := range v {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := val.(map[string]interface{}); ok {
			leaf := true
			for _, subVal := range sub {
				if _, isStr := subVal.(string); !isStr {
					leaf = false
					break
				}
			}
			if leaf && len(sub) > 0 {
				out[key] = true
			} else {
				flattenKeys(key, sub, out)
			}
		}
	}
}
