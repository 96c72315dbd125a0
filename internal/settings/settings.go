// Package settings implements the preferences slice: appearance,
// notifications, and display language.
package settings

import "github.com/headgate/sluice"

// State is the settings slice.
type State struct {
	DarkMode      bool
	Notifications bool
	Language      string
}

// Action is implemented by every settings action; the set is closed to this
// package.
type Action interface {
	settingsAction()
}

// ToggleDarkMode flips the dark-mode flag.
type ToggleDarkMode struct{}

// ToggleNotifications flips the notifications flag.
type ToggleNotifications struct{}

// ChangeLanguage sets the display language verbatim; the slice does not
// interpret the tag.
type ChangeLanguage struct {
	Language string
}

func (ToggleDarkMode) settingsAction()      {}
func (ToggleNotifications) settingsAction() {}
func (ChangeLanguage) settingsAction()      {}

// Reduce applies a settings action to s.
func Reduce(s State, action sluice.Action) State {
	act, ok := action.(Action)
	if !ok {
		return s
	}

	switch act := act.(type) {
	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
	case ToggleNotifications:
		s.Notifications = !s.Notifications
	case ChangeLanguage:
		s.Language = act.Language
	}
	return s
}

// Reducer adapts Reduce for store construction.
func Reducer() sluice.Reducer[State] {
	return sluice.ReducerFunc[State](Reduce)
}
