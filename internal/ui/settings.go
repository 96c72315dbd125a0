package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/headgate/sluice/internal/settings"
)

// handleSettingsKey maps settings-tab keys onto settings dispatches. The
// language cycle is a presentation concern: the slice stores whatever tag it
// is told, the UI decides what "next" means.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleDark):
		m.app.Dispatch(settings.ToggleDarkMode{})
	case key.Matches(msg, m.keys.ToggleNotifications):
		m.app.Dispatch(settings.ToggleNotifications{})
	case key.Matches(msg, m.keys.CycleLanguage):
		next := nextLanguage(m.appState().Settings.Language)
		m.app.Dispatch(settings.ChangeLanguage{Language: next})
	}
	return m, nil
}

// renderSettings renders the settings tab as a label/value listing.
func (m Model) renderSettings() string {
	t := m.currentTheme()
	styles := t.Styles()
	l := m.currentLabels()
	state := m.appState().Settings

	onOff := func(v bool) string {
		if v {
			return styles.SuccessText.Render("● " + l.On)
		}
		return styles.FaintText.Render("○ " + l.Off)
	}

	label := styles.MutedText.Width(18)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + label.Render(l.DarkMode) + onOff(state.DarkMode))
	b.WriteString("\n")
	b.WriteString("  " + label.Render(l.Notifications) + onOff(state.Notifications))
	b.WriteString("\n")
	b.WriteString("  " + label.Render(l.Language) + styles.Text.Render(displayLanguage(state.Language)))
	b.WriteString("\n\n")
	b.WriteString("  " + styles.FaintText.Render(t.Name+" · "+state.Language))
	b.WriteString("\n")

	return b.String()
}
