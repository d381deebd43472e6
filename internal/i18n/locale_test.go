package i18n

import (
	"testing"
)

func TestSpanishLocale(t *testing.T) {
	Init("es")

	tests := []struct {
		id     string
		def    string
		wantEs string
	}{
		{"monitor.empty", "No active claude sessions", "No hay sesiones de claude activas"},
		{"monitor.col.directory", "Directory", "Directorio"},
		{"state.running", "Running", "En ejecución"},
		{"state.iowait", "I/O Wait", "Espera E/S"},
		{"browser.live", "live", "activa"},
		{"common.time.justNow", "just now", "ahora mismo"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := T(tt.id, tt.def)
			if got != tt.wantEs {
				t.Errorf("T(%q) = %q, want %q", tt.id, got, tt.wantEs)
			}
		})
	}
}

func TestSpanishPluralization(t *testing.T) {
	Init("es")

	one := Tn("monitor.active", "{{.Count}} active", "{{.Count}} active", 1)
	if one != "1 activa" {
		t.Errorf("Tn(1) = %q, want %q", one, "1 activa")
	}

	many := Tn("monitor.active", "{{.Count}} active", "{{.Count}} active", 3)
	if many != "3 activas" {
		t.Errorf("Tn(3) = %q, want %q", many, "3 activas")
	}
}

func TestEnglishDoesNotReturnSpanish(t *testing.T) {
	Init("en")

	got := T("monitor.empty", "No active claude sessions")
	if got != "No active claude sessions" {
		t.Errorf("English T(monitor.empty) = %q, want %q", got, "No active claude sessions")
	}
}

func TestLocaleSwitch(t *testing.T) {
	Init("en")
	en := T("monitor.col.status", "Status")
	if en != "Status" {
		t.Errorf("English col.status = %q, want %q", en, "Status")
	}

	Init("es")
	es := T("monitor.col.status", "Status")
	if es != "Estado" {
		t.Errorf("Spanish col.status = %q, want %q", es, "Estado")
	}

	Init("en")
	en2 := T("monitor.col.status", "Status")
	if en2 != "Status" {
		t.Errorf("English col.status after switch = %q, want %q", en2, "Status")
	}
}

func TestUntranslatedKeyFallsBack(t *testing.T) {
	Init("es")

	got := T("some.untranslated.key", "English fallback")
	if got != "English fallback" {
		t.Errorf("untranslated key = %q, want %q", got, "English fallback")
	}
}
