package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/tui/styles"
)

// registerModel collects the fields for account creation. Registration does
// not log the new user in; on success the user is returned to the login view.
type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

const (
	regUsername = iota
	regEmail
	regPassword
	regConfirm
)

func newRegisterModel() *registerModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	confirm := textinput.New()
	confirm.Placeholder = "repeat password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.CharLimit = 128

	return &registerModel{inputs: []textinput.Model{username, email, password, confirm}}
}

func (m *registerModel) focusCmd() tea.Cmd {
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[0].Focus()
}

func (m *registerModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.submitting = false
}

func (m *registerModel) update(app *App, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.cycleFocus(1)
		case "shift+tab", "up":
			return m.cycleFocus(-1)
		case "esc":
			return navTo(viewLogin)
		case "enter":
			if m.submitting {
				return nil
			}
			username := strings.TrimSpace(m.inputs[regUsername].Value())
			email := strings.TrimSpace(m.inputs[regEmail].Value())
			password := m.inputs[regPassword].Value()
			confirm := m.inputs[regConfirm].Value()

			if username == "" || email == "" || password == "" {
				return func() tea.Msg { return infoMsg{text: "All fields are required"} }
			}
			if password != confirm {
				return func() tea.Msg { return infoMsg{text: "Passwords do not match"} }
			}
			m.submitting = true
			return app.registerCmd(username, email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *registerModel) cycleFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *registerModel) view() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Create an account") + "\n\n")

	labels := []string{"Username", "Email", "Password", "Confirm password"}
	for i, input := range m.inputs {
		label := styles.Label
		if i == m.focus {
			label = styles.LabelFocused
		}
		b.WriteString(label.Render(labels[i]) + input.View() + "\n")
	}

	if m.submitting {
		b.WriteString("\n" + styles.Muted.Render("Creating account..."))
	}
	return b.String()
}
