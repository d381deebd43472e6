// Package i18n provides internationalization support for claude-sessions.
//
// Usage:
//
//	i18n.Init("en")                                            // at startup
//	i18n.T("monitor.empty", "No active claude sessions")       // simple string
//	i18n.Tf("list.prompt", "Session number (1-%d): ", n)       // with fmt args
//	i18n.Tn("monitor.active", "{{.Count}} active", "{{.Count}} active", n)
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	mu        sync.RWMutex
)

// Init initializes the i18n system with the given language tag.
// Falls back to English if the language is not available.
// Safe to call multiple times.
func Init(lang string) {
	mu.Lock()
	defer mu.Unlock()

	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, _ := localeFS.ReadDir("locales")
	for _, e := range entries {
		_, _ = bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang, "en")
}

// T returns the localized string for the given message ID.
// The defaultMsg is the English fallback.
func T(id string, defaultMsg string) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		return defaultMsg
	}

	s, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: defaultMsg,
		},
	})
	if err != nil {
		return defaultMsg
	}
	return s
}

// Tf returns the localized string with fmt.Sprintf-style formatting.
func Tf(id string, defaultMsg string, args ...any) string {
	return fmt.Sprintf(T(id, defaultMsg), args...)
}

// Tn returns the localized string with pluralization.
// one/other use go template syntax with {{.Count}}.
func Tn(id string, one string, other string, count int) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		if count == 1 {
			return strings.ReplaceAll(one, "{{.Count}}", fmt.Sprint(count))
		}
		return strings.ReplaceAll(other, "{{.Count}}", fmt.Sprint(count))
	}

	s, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			One:   one,
			Other: other,
		},
		PluralCount:  count,
		TemplateData: map[string]int{"Count": count},
	})
	if err != nil {
		return strings.ReplaceAll(other, "{{.Count}}", fmt.Sprint(count))
	}
	return s
}

// ResolveLocale determines the active locale from env/config.
// Priority: CLAUDE_SESSIONS_LANG > configLang > LC_ALL/LANG > "en"
func ResolveLocale(configLang string) string {
	if v := os.Getenv("CLAUDE_SESSIONS_LANG"); v != "" {
		return v
	}
	if configLang != "" {
		return configLang
	}
	if v := os.Getenv("LC_ALL"); v != "" {
		return normalizeLocale(v)
	}
	if v := os.Getenv("LANG"); v != "" {
		return normalizeLocale(v)
	}
	return "en"
}

// normalizeLocale converts POSIX locale format to BCP 47.
// e.g., "es_MX.UTF-8" -> "es-MX", "en_US" -> "en-US"
func normalizeLocale(posix string) string {
	if base, _, found := strings.Cut(posix, "."); found {
		posix = base
	}
	return strings.ReplaceAll(posix, "_", "-")
}
