// Package ui provides the terminal user interface for the sluice demo.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Bubble Tea's Elm architecture is itself a
// unidirectional loop, which keeps the wiring honest: every key press that
// means something dispatches an action to a store inside Update, and every
// render reads the stores through State. The Model carries presentation
// state only (active tab, cursor position, open overlays); domain state
// lives in the stores and nowhere else.
//
// # Package Structure
//
//   - app.go: root Model, Update/View dispatchers, and the Run function
//   - counter.go, profile.go, settings.go, articles.go: one file per tab,
//     each pairing a key handler with a renderer
//   - help.go: the help overlay
//   - header.go: status bar, tab strip, and key-hint bar
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: light/dark palettes and Lipgloss styles
//   - strings.go: localized label tables and the language cycle
//
// # Deriving Everything From State
//
// The theme, the label set, and every value on screen are re-derived from
// store state on each render. Toggling dark mode or cycling the language is
// nothing but a dispatch; the next frame restyles itself because it reads
// the settings slice again. The UI holds no copy that could go stale.
//
// # Overlays
//
// The help modal, the profile forms, and the article reader intercept keys
// before the global bindings, so typing a username never switches tabs.
// Forms are transient: they own their text inputs while open and dissolve
// into a single dispatch on submit.
package ui
