package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/headgate/sluice/internal/content"
)

// handleArticlesKey maps articles-tab keys onto list movement, favorite
// dispatches, and opening the reader.
func (m Model) handleArticlesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	articles := m.appState().Content.Articles
	if len(articles) == 0 {
		return m, nil
	}
	m.selected = clamp(m.selected, 0, len(articles)-1)

	switch {
	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+1, 0, len(articles)-1)

	case key.Matches(msg, m.keys.Up):
		m.selected = clamp(m.selected-1, 0, len(articles)-1)

	case key.Matches(msg, m.keys.Favorite):
		m.app.Dispatch(content.ToggleFavorite{ID: articles[m.selected].ID})

	case key.Matches(msg, m.keys.Clear):
		m.app.Dispatch(content.ClearFavorites{})

	case key.Matches(msg, m.keys.Open):
		m.openReader(articles[m.selected])
	}
	return m, nil
}

// handleReaderKey processes input while the reader is open. Favorites can
// be toggled without leaving the article; everything else scrolls.
func (m Model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.reading = false
		return m, nil

	case key.Matches(msg, m.keys.Favorite):
		articles := m.appState().Content.Articles
		if m.selected < len(articles) {
			m.app.Dispatch(content.ToggleFavorite{ID: articles[m.selected].ID})
		}
		return m, nil

	case msg.String() == "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)
	return m, cmd
}

// initReader sizes the viewport once the first WindowSizeMsg arrives.
func (m *Model) initReader() {
	m.reader = viewport.New(m.width, m.contentHeight()-2)
}

// resizeReader keeps the viewport matched to the terminal. The open
// article is re-rendered because glamour wraps to a fixed width.
func (m *Model) resizeReader() {
	m.reader.Width = m.width
	m.reader.Height = m.contentHeight() - 2
	if m.reading {
		articles := m.appState().Content.Articles
		if m.selected < len(articles) {
			m.reader.SetContent(m.renderMarkdown(articles[m.selected].Content))
		}
	}
}

// openReader fills the viewport with the rendered article and switches the
// tab into reading mode.
func (m *Model) openReader(a content.Article) {
	m.reader.SetContent(m.renderMarkdown(a.Content))
	m.reader.GotoTop()
	m.reading = true
}

// renderMarkdown renders an article body with glamour, styled to match the
// settings slice's appearance mode. On render failure the raw markdown is
// shown; a demo article that will not render is not worth an error surface.
func (m Model) renderMarkdown(body string) string {
	style := "light"
	if m.appState().Settings.DarkMode {
		style = "dark"
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	if width > 100 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return out
}

// renderArticles renders the articles tab: the reader when open, else the
// list with favorite markers.
func (m Model) renderArticles() string {
	if m.reading {
		return m.renderReader()
	}

	t := m.currentTheme()
	styles := t.Styles()
	l := m.currentLabels()
	state := m.appState().Content

	if len(state.Articles) == 0 {
		return "\n  " + styles.FaintText.Render(l.ArticlesEmpty) + "\n"
	}

	selected := clamp(m.selected, 0, len(state.Articles)-1)

	var b strings.Builder
	b.WriteString("\n")
	for i, a := range state.Articles {
		star := "  "
		if state.IsFavorite(a.ID) {
			star = styles.WarningText.Render("★ ")
		}

		line := star + a.Title
		if i == selected {
			b.WriteString("  " + styles.Selected.Render("▸ "+line))
		} else {
			b.WriteString("    " + styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + styles.MutedText.Render(l.Favorites+":") + " ")
	b.WriteString(styles.WarningText.Render(favoriteStars(state)))
	b.WriteString("\n")

	return b.String()
}

// renderReader renders the open article: a title line over the viewport.
func (m Model) renderReader() string {
	t := m.currentTheme()
	styles := t.Styles()
	state := m.appState().Content

	title := ""
	if m.selected < len(state.Articles) {
		a := state.Articles[m.selected]
		title = a.Title
		if state.IsFavorite(a.ID) {
			title = "★ " + title
		}
	}

	var b strings.Builder
	b.WriteString(" " + styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", max(1, m.width))))
	b.WriteString("\n")
	b.WriteString(m.reader.View())

	return b.String()
}

func favoriteStars(s content.State) string {
	n := s.FavoriteCount()
	if n == 0 {
		return "—"
	}
	return strings.Repeat("★", n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
