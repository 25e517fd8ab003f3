package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/form"
	"github.com/Ivaneres/coffee/internal/tui/styles"
)

// beanFormModel creates or edits a bean. The roast level is a cycling
// select over the fixed enumeration plus "unset".
type beanFormModel struct {
	form   *form.BeanForm
	inputs []textinput.Model
	focus  int
	// roastIndex indexes into roastOptions; 0 means unset.
	roastIndex int
	submitting bool
	errText    string
}

const (
	beanVariety = iota
	beanSeller
	beanRoaster
	beanRoast // select row, not a text input
	beanFieldCount
)

func roastOptions() []string {
	return append([]string{""}, api.RoastLevels()...)
}

func newBeanFormModel(bean *api.Bean) *beanFormModel {
	var f *form.BeanForm
	if bean != nil {
		f = form.EditBeanForm(bean)
	} else {
		f = form.NewBeanForm()
	}

	variety := textinput.New()
	variety.Placeholder = "e.g. Ethiopian Yirgacheffe"
	variety.CharLimit = 128
	variety.SetValue(f.Variety)

	seller := textinput.New()
	seller.Placeholder = "optional"
	seller.CharLimit = 128
	seller.SetValue(f.Seller)

	roaster := textinput.New()
	roaster.Placeholder = "optional"
	roaster.CharLimit = 128
	roaster.SetValue(f.Roaster)

	m := &beanFormModel{
		form:   f,
		inputs: []textinput.Model{variety, seller, roaster},
	}
	for i, opt := range roastOptions() {
		if opt == f.RoastLevel {
			m.roastIndex = i
		}
	}
	return m
}

func (m *beanFormModel) focusCmd() tea.Cmd {
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[0].Focus()
}

func (m *beanFormModel) update(app *App, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.errText = ""
		switch key.String() {
		case "tab", "down":
			return m.cycleFocus(1)
		case "shift+tab", "up":
			return m.cycleFocus(-1)
		case "esc":
			return navTo(viewBeans)
		case "left", "right":
			if m.focus == beanRoast {
				opts := roastOptions()
				delta := 1
				if key.String() == "left" {
					delta = -1
				}
				m.roastIndex = (m.roastIndex + delta + len(opts)) % len(opts)
				return nil
			}
		case "enter":
			return m.submit(app)
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return cmd
	}
	return nil
}

func (m *beanFormModel) submit(app *App) tea.Cmd {
	if m.submitting {
		return nil
	}

	m.form.Variety = m.inputs[beanVariety].Value()
	m.form.Seller = m.inputs[beanSeller].Value()
	m.form.Roaster = m.inputs[beanRoaster].Value()
	m.form.RoastLevel = roastOptions()[m.roastIndex]

	if m.form.Editing() {
		req, err := m.form.UpdateRequest()
		if err != nil {
			m.errText = err.Error()
			return nil
		}
		m.submitting = true
		return app.updateBeanCmd(m.form.BeanID, *req)
	}

	req, err := m.form.CreateRequest()
	if err != nil {
		m.errText = err.Error()
		return nil
	}
	m.submitting = true
	return app.createBeanCmd(*req)
}

func (m *beanFormModel) cycleFocus(delta int) tea.Cmd {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + beanFieldCount) % beanFieldCount
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m *beanFormModel) view() string {
	var b strings.Builder
	if m.form.Editing() {
		b.WriteString(styles.Subtitle.Render("Edit bean") + "\n\n")
	} else {
		b.WriteString(styles.Subtitle.Render("Add a bean") + "\n\n")
	}

	labels := []string{"Variety *", "Seller", "Roaster"}
	for i, input := range m.inputs {
		label := styles.Label
		if i == m.focus {
			label = styles.LabelFocused
		}
		b.WriteString(label.Render(labels[i]) + input.View() + "\n")
	}

	roast := roastOptions()[m.roastIndex]
	if roast == "" {
		roast = "(unset)"
	}
	label := styles.Label
	if m.focus == beanRoast {
		label = styles.LabelFocused
		roast = "< " + roast + " >"
	}
	b.WriteString(label.Render("Roast level") + roast + "\n")

	if m.errText != "" {
		b.WriteString("\n" + styles.ErrorLine.Render(m.errText))
	}
	if m.submitting {
		b.WriteString("\n" + styles.Muted.Render("Saving..."))
	}
	return b.String()
}
