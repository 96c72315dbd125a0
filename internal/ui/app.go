package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/headgate/sluice"
	"github.com/headgate/sluice/internal/appstate"
	"github.com/headgate/sluice/internal/counter"
)

// Tab identifies the active tab.
type Tab int

const (
	TabCounter Tab = iota
	TabProfile
	TabSettings
	TabArticles
)

const tabCount = 4

// Options configures the UI.
type Options struct {
	Counter *sluice.Store[counter.State]
	App     *sluice.Store[appstate.AppState]
}

// Model is the root application state for Bubble Tea. Domain state lives in
// the stores; the model holds only presentation state (active tab, cursor
// positions, open overlays).
type Model struct {
	counter *sluice.Store[counter.State]
	app     *sluice.Store[appstate.AppState]

	keys   keyMap
	width  int
	height int
	ready  bool

	tab      Tab
	showHelp bool

	// Profile forms
	form formModel

	// Articles list and reader
	selected int
	reading  bool
	reader   viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	return Model{
		counter: opts.Counter,
		app:     opts.App,
		keys:    DefaultKeyMap(),
		tab:     TabCounter,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initReader()
		}
		m.ready = true
		m.resizeReader()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays eat input first: help closes on any key, forms and the
	// reader own their keys so typing never triggers global bindings.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.form.active() {
		return m.handleFormKey(msg)
	}
	if m.reading {
		return m.handleReaderKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "tab":
		m.tab = (m.tab + 1) % tabCount
		return m, nil

	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil

	case "1":
		m.tab = TabCounter
		return m, nil

	case "2":
		m.tab = TabProfile
		return m, nil

	case "3":
		m.tab = TabSettings
		return m, nil

	case "4":
		m.tab = TabArticles
		return m, nil
	}

	switch m.tab {
	case TabCounter:
		return m.handleCounterKey(msg)
	case TabProfile:
		return m.handleProfileKey(msg)
	case TabSettings:
		return m.handleSettingsKey(msg)
	case TabArticles:
		return m.handleArticlesKey(msg)
	}

	return m, nil
}

// renderMain renders the full UI: header, tab bar, content, hint bar.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderHintBar())

	return b.String()
}

// renderContent renders the active tab's body at a fixed height so the hint
// bar stays pinned to the bottom row.
func (m Model) renderContent() string {
	var body string
	switch m.tab {
	case TabCounter:
		body = m.renderCounter()
	case TabProfile:
		body = m.renderProfile()
	case TabSettings:
		body = m.renderSettings()
	case TabArticles:
		body = m.renderArticles()
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.contentHeight()).
		Render(body)
}

// contentHeight is the terminal height minus the three chrome rows.
func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 1 {
		return 1
	}
	return h
}

// appState reads the composite store. Renders always see the latest
// completed dispatch.
func (m Model) appState() appstate.AppState {
	return m.app.State()
}

func (m Model) currentTheme() Theme {
	return ThemeFor(m.appState().Settings.DarkMode)
}

func (m Model) currentLabels() labels {
	return labelsFor(m.appState().Settings.Language)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
