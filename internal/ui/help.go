package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay. Sections follow the key map's
// FullHelp grouping; any key closes the overlay.
func (m Model) renderHelp() string {
	t := m.currentTheme()
	styles := t.Styles()
	l := m.currentLabels()

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{m.keys.NextTab, m.keys.PrevTab, m.keys.Counter, m.keys.Profile, m.keys.Settings, m.keys.Articles}},
		{l.TabCounter, []key.Binding{m.keys.Increment, m.keys.Decrement, m.keys.Reset, m.keys.Save}},
		{l.TabProfile, []key.Binding{m.keys.Login, m.keys.Edit, m.keys.Logout}},
		{l.TabSettings, []key.Binding{m.keys.ToggleDark, m.keys.ToggleNotifications, m.keys.CycleLanguage}},
		{l.TabArticles, []key.Binding{m.keys.Up, m.keys.Down, m.keys.Favorite, m.keys.Clear, m.keys.Open, m.keys.Back}},
		{"General", []key.Binding{m.keys.Help, m.keys.Quit}},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Warning)).
		Width(12)

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := styles.Modal.Width(40).Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(t.Background)),
	)
}
