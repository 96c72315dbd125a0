package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// onSurface builds a style for text sitting on the surface bar, so joined
// segments keep a continuous background.
func onSurface(t Theme, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(t.Surface)).
		Foreground(lipgloss.Color(fg))
}

// renderHeader renders the top status bar: logo, session, language,
// favorites. Everything shown here is a readout of store state.
func (m Model) renderHeader() string {
	t := m.currentTheme()
	l := m.currentLabels()
	state := m.appState()

	sep := onSurface(t, t.Text).Render("  ")

	parts := []string{
		onSurface(t, t.Warning).Bold(true).Render("sluice"),
	}

	if state.User.LoggedIn {
		name := state.User.Username
		if name == "" {
			name = l.NotSet
		}
		parts = append(parts, onSurface(t, t.Success).Render("● "+l.LoggedInAs+" "+name))
	} else {
		parts = append(parts, onSurface(t, t.Muted).Render("○ "+l.LoggedOut))
	}

	parts = append(parts, onSurface(t, t.Muted).Render(displayLanguage(state.Settings.Language)))

	if n := state.Content.FavoriteCount(); n > 0 {
		parts = append(parts, onSurface(t, t.Warning).Render(fmt.Sprintf("★ %d", n)))
	}

	return fillBar(" "+strings.Join(parts, sep), m.width, t.Surface)
}

// renderTabBar renders the tab strip with the active tab highlighted.
func (m Model) renderTabBar() string {
	t := m.currentTheme()
	styles := t.Styles()
	l := m.currentLabels()

	titles := []string{l.TabCounter, l.TabProfile, l.TabSettings, l.TabArticles}

	rendered := make([]string, 0, len(titles))
	for i, title := range titles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if Tab(i) == m.tab {
			rendered = append(rendered, styles.TabActive.Render(label))
		} else {
			rendered = append(rendered, styles.TabInactive.Render(label))
		}
	}

	return fillBar(strings.Join(rendered, ""), m.width, t.Surface)
}

// renderHintBar renders the bottom key-hint bar for the active tab.
func (m Model) renderHintBar() string {
	t := m.currentTheme()

	var bindings []key.Binding
	switch m.tab {
	case TabCounter:
		bindings = []key.Binding{m.keys.Increment, m.keys.Decrement, m.keys.Reset, m.keys.Save}
	case TabProfile:
		if m.appState().User.LoggedIn {
			bindings = []key.Binding{m.keys.Edit, m.keys.Logout}
		} else {
			bindings = []key.Binding{m.keys.Login}
		}
	case TabSettings:
		bindings = []key.Binding{m.keys.ToggleDark, m.keys.ToggleNotifications, m.keys.CycleLanguage}
	case TabArticles:
		if m.reading {
			bindings = []key.Binding{m.keys.Back, m.keys.Favorite}
		} else {
			bindings = []key.Binding{m.keys.Down, m.keys.Up, m.keys.Favorite, m.keys.Clear, m.keys.Open}
		}
	}
	bindings = append(bindings, m.keys.ShortHelp()...)

	accent := onSurface(t, t.Accent)
	muted := onSurface(t, t.Muted)
	colon := onSurface(t, t.Faint).Render(":")
	sep := onSurface(t, t.Text).Render("  ")

	segments := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments, accent.Render(h.Key)+colon+muted.Render(h.Desc))
	}

	return fillBar(" "+strings.Join(segments, sep), m.width, t.Surface)
}
