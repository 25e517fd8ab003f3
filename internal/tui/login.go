package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/tui/styles"
)

// loginModel is the unauthenticated entry view.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() *loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	return &loginModel{inputs: []textinput.Model{username, password}}
}

func (m *loginModel) focusCmd() tea.Cmd {
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[0].Focus()
}

func (m *loginModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.submitting = false
}

func (m *loginModel) update(app *App, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.cycleFocus(1)
		case "shift+tab", "up":
			return m.cycleFocus(-1)
		case "ctrl+r":
			return navTo(viewRegister)
		case "enter":
			if m.submitting {
				return nil
			}
			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				return func() tea.Msg { return infoMsg{text: "Enter a username and password"} }
			}
			m.submitting = true
			return app.loginCmd(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *loginModel) cycleFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *loginModel) view() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Log in to your brew log") + "\n\n")

	labels := []string{"Username", "Password"}
	for i, input := range m.inputs {
		label := styles.Label
		if i == m.focus {
			label = styles.LabelFocused
		}
		b.WriteString(label.Render(labels[i]) + input.View() + "\n")
	}

	if m.submitting {
		b.WriteString("\n" + styles.Muted.Render("Logging in..."))
	}
	return b.String()
}
