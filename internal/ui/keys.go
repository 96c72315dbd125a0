package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit     key.Binding
	Help     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Counter  key.Binding
	Profile  key.Binding
	Settings key.Binding
	Articles key.Binding

	// Counter actions
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
	Save      key.Binding

	// Profile actions
	Login  key.Binding
	Edit   key.Binding
	Logout key.Binding

	// Settings actions
	ToggleDark          key.Binding
	ToggleNotifications key.Binding
	CycleLanguage       key.Binding

	// Articles actions
	Up       key.Binding
	Down     key.Binding
	Favorite key.Binding
	Clear    key.Binding
	Open     key.Binding
	Back     key.Binding

	// Forms
	NextField key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		Counter: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Counter tab"),
		),
		Profile: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Profile tab"),
		),
		Settings: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Settings tab"),
		),
		Articles: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Articles tab"),
		),

		// Counter actions
		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Decrement"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset value"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Save to history"),
		),

		// Profile actions
		Login: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Log in"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit profile"),
		),
		Logout: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Log out"),
		),

		// Settings actions
		ToggleDark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Toggle dark mode"),
		),
		ToggleNotifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Toggle notifications"),
		),
		CycleLanguage: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Cycle language"),
		),

		// Articles actions
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f", " "),
			key.WithHelp("f", "Toggle favorite"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear favorites"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Read article"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),

		// Forms
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.NextTab, k.PrevTab, k.Counter, k.Profile, k.Settings, k.Articles},
		// Counter
		{k.Increment, k.Decrement, k.Reset, k.Save},
		// Profile
		{k.Login, k.Edit, k.Logout},
		// Settings
		{k.ToggleDark, k.ToggleNotifications, k.CycleLanguage},
		// Articles
		{k.Up, k.Down, k.Favorite, k.Clear, k.Open, k.Back},
		// General
		{k.Help, k.Quit},
	}
}
