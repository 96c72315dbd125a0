package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/headgate/sluice/internal/counter"
)

// handleCounterKey maps counter-tab keys onto counter store dispatches.
func (m Model) handleCounterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Increment):
		m.counter.Dispatch(counter.Increment{})
	case key.Matches(msg, m.keys.Decrement):
		m.counter.Dispatch(counter.Decrement{})
	case key.Matches(msg, m.keys.Reset):
		m.counter.Dispatch(counter.Reset{})
	case key.Matches(msg, m.keys.Save):
		m.counter.Dispatch(counter.AddToHistory{})
	}
	return m, nil
}

// renderCounter renders the counter tab: the current value large, the saved
// history underneath.
func (m Model) renderCounter() string {
	t := m.currentTheme()
	styles := t.Styles()
	l := m.currentLabels()
	state := m.counter.State()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + styles.MutedText.Render(l.CounterValue))
	b.WriteString("\n\n")
	b.WriteString("  " + bigDigits(state.Value, styles))
	b.WriteString("\n\n")

	b.WriteString("  " + styles.MutedText.Render(l.CounterHistory+":") + " ")
	if len(state.History) == 0 {
		b.WriteString(styles.FaintText.Render(l.HistoryEmpty))
	} else {
		entries := make([]string, len(state.History))
		for i, v := range state.History {
			entries[i] = strconv.Itoa(v)
		}
		b.WriteString(styles.Text.Render(strings.Join(entries, " → ")))
	}
	b.WriteString("\n")

	return b.String()
}

// bigDigits renders the value across the three rows of a small figlet-like
// font so it reads at a glance.
func bigDigits(value int, styles Styles) string {
	text := fmt.Sprintf(" %d ", value)

	rows := make([]string, 3)
	for _, r := range text {
		glyph, ok := digitFont[r]
		if !ok {
			glyph = digitFont[' ']
		}
		for i := range rows {
			rows[i] += glyph[i]
		}
	}
	return styles.BigValue.Render(strings.Join(rows, "\n  "))
}

// digitFont is a 3-row block font covering digits and the minus sign.
var digitFont = map[rune][3]string{
	'0': {"┌─┐", "│ │", "└─┘"},
	'1': {" ┐ ", " │ ", " ┴ "},
	'2': {"┌─┐", "┌─┘", "└─┘"},
	'3': {"┌─┐", " ─┤", "└─┘"},
	'4': {"┬ ┬", "└─┤", "  ┴"},
	'5': {"┌─┐", "└─┐", "└─┘"},
	'6': {"┌─┐", "├─┐", "└─┘"},
	'7': {"┌─┐", "  │", "  ┴"},
	'8': {"┌─┐", "├─┤", "└─┘"},
	'9': {"┌─┐", "└─┤", "└─┘"},
	'-': {"   ", "── ", "   "},
	' ': {"  ", "  ", "  "},
}
