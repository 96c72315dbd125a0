package ui

import "testing"

func TestThemeFor(t *testing.T) {
	if got := ThemeFor(true).Name; got != "Dark" {
		t.Fatalf("ThemeFor(true).Name = %q, want Dark", got)
	}
	if got := ThemeFor(false).Name; got != "Light" {
		t.Fatalf("ThemeFor(false).Name = %q, want Light", got)
	}
}

func TestThemePalettesDiffer(t *testing.T) {
	dark := darkTheme()
	light := lightTheme()

	if dark.Background == light.Background {
		t.Fatal("dark and light share a background")
	}
	if dark.Text == light.Text {
		t.Fatal("dark and light share a text color")
	}
}
