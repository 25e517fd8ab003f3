package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/form"
	"github.com/Ivaneres/coffee/internal/tui/styles"
)

// settingsModel edits the user's default equipment. Saved defaults pre-fill
// new record forms.
type settingsModel struct {
	form       *form.SettingsForm
	inputs     []textinput.Model
	focus      int
	loaded     bool
	submitting bool
}

const (
	setMachine = iota
	setGrinder
)

func newSettingsModel() *settingsModel {
	machine := textinput.New()
	machine.Placeholder = "default machine"
	machine.CharLimit = 128

	grinder := textinput.New()
	grinder.Placeholder = "default grinder"
	grinder.CharLimit = 128

	return &settingsModel{inputs: []textinput.Model{machine, grinder}}
}

// load seeds the form from the fetched settings and focuses the first field.
func (m *settingsModel) load(settings *api.UserSettings) tea.Cmd {
	m.form = form.NewSettingsForm(settings)
	m.inputs[setMachine].SetValue(m.form.DefaultMachine)
	m.inputs[setGrinder].SetValue(m.form.DefaultGrinder)
	m.loaded = true
	m.submitting = false

	m.focus = 0
	m.inputs[setGrinder].Blur()
	return m.inputs[setMachine].Focus()
}

func (m *settingsModel) update(app *App, msg tea.Msg) tea.Cmd {
	if !m.loaded {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down", "shift+tab", "up":
			m.inputs[m.focus].Blur()
			m.focus = 1 - m.focus
			return m.inputs[m.focus].Focus()
		case "esc":
			return navTo(viewBeans)
		case "enter":
			if m.submitting {
				return nil
			}
			m.form.DefaultMachine = m.inputs[setMachine].Value()
			m.form.DefaultGrinder = m.inputs[setGrinder].Value()
			m.submitting = true
			return app.saveSettingsCmd(*m.form.UpdateRequest())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *settingsModel) view() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Default equipment") + "\n\n")

	if !m.loaded {
		return b.String() + styles.Muted.Render("Loading...")
	}

	labels := []string{"Machine", "Grinder"}
	for i, input := range m.inputs {
		label := styles.Label
		if i == m.focus {
			label = styles.LabelFocused
		}
		b.WriteString(label.Render(labels[i]) + input.View() + "\n")
	}

	b.WriteString("\n" + styles.Muted.Render("New records pre-fill with these defaults."))
	if m.submitting {
		b.WriteString("\n" + styles.Muted.Render("Saving..."))
	}
	return b.String()
}
