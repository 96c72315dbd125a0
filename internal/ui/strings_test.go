package ui

import "testing"

func TestLabelsFor_FallsBackToEnglish(t *testing.T) {
	if got := labelsFor("es").TabSettings; got != "Ajustes" {
		t.Fatalf("es TabSettings = %q, want %q", got, "Ajustes")
	}
	if got := labelsFor("de").TabSettings; got != "Settings" {
		t.Fatalf("unknown language TabSettings = %q, want English fallback", got)
	}
	if got := labelsFor("").TabSettings; got != "Settings" {
		t.Fatalf("empty language TabSettings = %q, want English fallback", got)
	}
}

func TestNextLanguage_CyclesInOrder(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"en", "es"},
		{"es", "fr"},
		{"fr", "en"},
		{"", "en"},
		{"de", "en"},
	}
	for _, tt := range tests {
		if got := nextLanguage(tt.current); got != tt.want {
			t.Errorf("nextLanguage(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestDisplayLanguage(t *testing.T) {
	if got := displayLanguage("fr"); got != "Français" {
		t.Fatalf("displayLanguage(fr) = %q, want Français", got)
	}
	// Unknown tags pass through so the header never shows a blank.
	if got := displayLanguage("tlh"); got != "tlh" {
		t.Fatalf("displayLanguage(tlh) = %q, want tlh", got)
	}
}
