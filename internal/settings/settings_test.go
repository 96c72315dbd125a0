package settings

import "testing"

func TestReduce_ToggleDarkMode(t *testing.T) {
	s := State{}

	s = Reduce(s, ToggleDarkMode{})
	if !s.DarkMode {
		t.Fatal("DarkMode = false after first toggle, want true")
	}

	s = Reduce(s, ToggleDarkMode{})
	if s.DarkMode {
		t.Fatal("DarkMode = true after second toggle, want false")
	}
}

func TestReduce_ToggleNotifications(t *testing.T) {
	s := State{Notifications: true}

	s = Reduce(s, ToggleNotifications{})
	if s.Notifications {
		t.Fatal("Notifications = true after toggle, want false")
	}
	if s.DarkMode {
		t.Fatal("DarkMode flipped by notifications toggle")
	}
}

func TestReduce_ChangeLanguage(t *testing.T) {
	s := State{Language: "en"}

	s = Reduce(s, ChangeLanguage{Language: "fr"})
	if s.Language != "fr" {
		t.Fatalf("Language = %q, want %q", s.Language, "fr")
	}

	// The slice stores the tag verbatim, sensible or not.
	s = Reduce(s, ChangeLanguage{Language: "xx-unknown"})
	if s.Language != "xx-unknown" {
		t.Fatalf("Language = %q, want %q", s.Language, "xx-unknown")
	}
}

func TestReduce_UnrecognizedActionIsIdentity(t *testing.T) {
	before := State{DarkMode: true, Notifications: true, Language: "es"}
	after := Reduce(before, struct{ foreign bool }{true})

	if after != before {
		t.Fatalf("state changed on unrecognized action: %+v, want %+v", after, before)
	}
}
