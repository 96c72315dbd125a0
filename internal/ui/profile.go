package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/headgate/sluice/internal/user"
)

// formMode identifies which profile form is open, if any.
type formMode int

const (
	formNone formMode = iota
	formLogin
	formEdit
)

// formModel holds an open profile form: its inputs and the focused field.
// Submitting dispatches to the store and closes the form; the form itself
// holds no domain state.
type formModel struct {
	mode   formMode
	inputs []textinput.Model
	focus  int
}

func (f formModel) active() bool {
	return f.mode != formNone
}

// newLoginForm builds the two-field login form. The password field is
// masked and its value is dispatched but never stored.
func newLoginForm(l labels) formModel {
	username := textinput.New()
	username.Placeholder = l.Username
	username.CharLimit = 50
	username.Width = 28
	username.Focus()

	password := textinput.New()
	password.Placeholder = l.Password
	password.CharLimit = 50
	password.Width = 28
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return formModel{
		mode:   formLogin,
		inputs: []textinput.Model{username, password},
	}
}

// newEditForm builds the profile edit form pre-filled from the user slice.
func newEditForm(l labels, current user.State) formModel {
	username := textinput.New()
	username.Placeholder = l.Username
	username.CharLimit = 50
	username.Width = 28
	username.SetValue(current.Username)
	username.Focus()

	email := textinput.New()
	email.Placeholder = l.Email
	email.CharLimit = 80
	email.Width = 28
	email.SetValue(current.Email)

	return formModel{
		mode:   formEdit,
		inputs: []textinput.Model{username, email},
	}
}

// handleProfileKey maps profile-tab keys onto store dispatches and form
// openings.
func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.appState().User

	switch {
	case !state.LoggedIn && key.Matches(msg, m.keys.Login):
		m.form = newLoginForm(m.currentLabels())

	case state.LoggedIn && key.Matches(msg, m.keys.Edit):
		m.form = newEditForm(m.currentLabels(), state)

	case state.LoggedIn && key.Matches(msg, m.keys.Logout):
		m.app.Dispatch(user.Logout{})
	}
	return m, nil
}

// handleFormKey processes input while a form is open. Navigation and submit
// keys are handled here; everything else goes to the focused input.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.form = formModel{}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.submitForm()
		m.form = formModel{}
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.form.inputs[m.form.focus].Blur()
		m.form.focus = (m.form.focus + 1) % len(m.form.inputs)
		m.form.inputs[m.form.focus].Focus()
		return m, nil

	case msg.String() == "shift+tab" || msg.String() == "up":
		m.form.inputs[m.form.focus].Blur()
		m.form.focus = (m.form.focus - 1 + len(m.form.inputs)) % len(m.form.inputs)
		m.form.inputs[m.form.focus].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// submitForm dispatches the action for the open form. Empty fields are
// dispatched as-is; the slices accept them and validation stays up here in
// presentation land, where it belongs (none is needed for a demo).
func (m Model) submitForm() {
	switch m.form.mode {
	case formLogin:
		m.app.Dispatch(user.Login{
			Username: strings.TrimSpace(m.form.inputs[0].Value()),
			Password: m.form.inputs[1].Value(),
		})
	case formEdit:
		m.app.Dispatch(user.UpdateProfile{
			Username: strings.TrimSpace(m.form.inputs[0].Value()),
			Email:    strings.TrimSpace(m.form.inputs[1].Value()),
		})
	}
}

// renderProfile renders the profile tab: an open form wins, otherwise the
// session readout.
func (m Model) renderProfile() string {
	if m.form.active() {
		return m.renderForm()
	}

	t := m.currentTheme()
	styles := t.Styles()
	l := m.currentLabels()
	state := m.appState().User

	var b strings.Builder
	b.WriteString("\n")

	if !state.LoggedIn {
		b.WriteString("  " + styles.MutedText.Render(l.LoggedOut))
		b.WriteString("\n\n")
		hint := m.keys.Login.Help()
		b.WriteString("  " + styles.FaintText.Render(hint.Key+": "+hint.Desc))
		b.WriteString("\n")
		return b.String()
	}

	name := state.Username
	if name == "" {
		name = l.NotSet
	}
	email := state.Email
	if email == "" {
		email = l.NotSet
	}

	label := styles.MutedText.Width(12)
	b.WriteString("  " + styles.SuccessText.Render("● "+l.LoggedInAs+" "+name))
	b.WriteString("\n\n")
	b.WriteString("  " + label.Render(l.Username) + styles.Text.Render(name))
	b.WriteString("\n")
	b.WriteString("  " + label.Render(l.Email) + styles.Text.Render(email))
	b.WriteString("\n")

	return b.String()
}

// renderForm renders the open form centered as a modal.
func (m Model) renderForm() string {
	t := m.currentTheme()
	styles := t.Styles()
	l := m.currentLabels()

	title := l.LoginTitle
	fieldLabels := []string{l.Username, l.Password}
	if m.form.mode == formEdit {
		title = l.EditTitle
		fieldLabels = []string{l.Username, l.Email}
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n\n")

	for i, input := range m.form.inputs {
		label := fieldLabels[i] + ": "
		if i == m.form.focus {
			label = styles.AccentText.Render(label)
		} else {
			label = styles.MutedText.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	submit := m.keys.Submit.Help()
	back := m.keys.Back.Help()
	b.WriteString(styles.FaintText.Render(submit.Key + ": " + submit.Desc + "  " + back.Key + ": " + back.Desc))

	modal := styles.Modal.Width(46).Render(b.String())

	return lipgloss.Place(
		m.width,
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(t.Background)),
	)
}
