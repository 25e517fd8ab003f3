package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/config"
	"github.com/Ivaneres/coffee/internal/form"
	"github.com/Ivaneres/coffee/internal/tui/styles"
)

// recordFormModel creates or edits an espresso record. The form is inert
// until seeded by the joined load: in create mode the machine and grinder
// fields pre-fill from the user's defaults, in edit mode every field seeds
// verbatim from the record.
type recordFormModel struct {
	cfg      *config.Config
	beanID   int
	recordID int

	bean *api.Bean
	form *form.RecordForm

	inputs     []textinput.Model
	focus      int
	submitting bool
	errText    string
}

const (
	recMachine = iota
	recGrinder
	recGrindSize
	recDose
	recExtraction
	recYield
	recNotes
	recTextCount  // text inputs end here; rating rows follow
	recRating     = recTextCount
	recSourness   = recTextCount + 1
	recBitter     = recTextCount + 2
	recSweet      = recTextCount + 3
	recFieldCount = recTextCount + 4
)

var ratingNames = [...]string{"rating", "sourness", "bitterness", "sweetness"}

func newRecordFormModel(cfg *config.Config, beanID, recordID int) *recordFormModel {
	return &recordFormModel{cfg: cfg, beanID: beanID, recordID: recordID}
}

// seed populates the form from the joined fetch result and focuses the
// first field.
func (m *recordFormModel) seed(msg recordFormLoadedMsg) tea.Cmd {
	m.bean = msg.bean
	if msg.record != nil {
		m.form = form.EditRecordForm(msg.record)
	} else {
		m.form = form.NewRecordForm(m.beanID, msg.settings)
	}

	newInput := func(placeholder, value string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.SetValue(value)
		return in
	}
	m.inputs = []textinput.Model{
		recMachine:    newInput("e.g. Gaggia Classic", m.form.Machine, 128),
		recGrinder:    newInput("e.g. Niche Zero", m.form.Grinder, 128),
		recGrindSize:  newInput("optional", m.form.GrindSize, 32),
		recDose:       newInput("grams, optional", m.form.Dose, 16),
		recExtraction: newInput("seconds, optional", m.form.ExtractionTime, 16),
		recYield:      newInput("grams, optional", m.form.YieldAmount, 16),
		recNotes:      newInput("tasting notes, optional", m.form.Notes, 512),
	}
	m.focus = 0
	return m.inputs[0].Focus()
}

func (m *recordFormModel) ratingFor(index int) int {
	switch index {
	case recRating:
		return m.form.Rating
	case recSourness:
		return m.form.Sourness
	case recBitter:
		return m.form.Bitterness
	case recSweet:
		return m.form.Sweetness
	}
	return 0
}

func (m *recordFormModel) update(app *App, msg tea.Msg) tea.Cmd {
	if m.form == nil {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		m.errText = ""
		switch key.String() {
		case "tab", "down":
			return m.cycleFocus(1)
		case "shift+tab", "up":
			return m.cycleFocus(-1)
		case "esc":
			return openBeanDetail(m.beanID)
		case "ctrl+s":
			return m.submit(app)
		case "left", "right":
			if m.focus >= recTextCount {
				delta := 1
				if key.String() == "left" {
					delta = -1
				}
				name := ratingNames[m.focus-recTextCount]
				m.form.SetRating(name, m.ratingFor(m.focus)+delta)
				return nil
			}
		}
	}

	if m.focus < recTextCount {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return cmd
	}
	return nil
}

func (m *recordFormModel) submit(app *App) tea.Cmd {
	if m.submitting {
		return nil
	}

	m.form.Machine = m.inputs[recMachine].Value()
	m.form.Grinder = m.inputs[recGrinder].Value()
	m.form.GrindSize = m.inputs[recGrindSize].Value()
	m.form.Dose = m.inputs[recDose].Value()
	m.form.ExtractionTime = m.inputs[recExtraction].Value()
	m.form.YieldAmount = m.inputs[recYield].Value()
	m.form.Notes = m.inputs[recNotes].Value()

	if m.form.Editing() {
		req, err := m.form.UpdateRequest()
		if err != nil {
			m.errText = err.Error()
			return nil
		}
		m.submitting = true
		return app.updateRecordCmd(m.form.RecordID, m.beanID, *req)
	}

	req, err := m.form.CreateRequest()
	if err != nil {
		m.errText = err.Error()
		return nil
	}
	m.submitting = true
	return app.createRecordCmd(*req)
}

func (m *recordFormModel) cycleFocus(delta int) tea.Cmd {
	if m.focus < recTextCount {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + recFieldCount) % recFieldCount
	if m.focus < recTextCount {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m *recordFormModel) view() string {
	if m.form == nil {
		return styles.Muted.Render("Loading...")
	}

	var b strings.Builder
	title := "Log a shot"
	if m.form.Editing() {
		title = "Edit record"
	}
	b.WriteString(styles.Subtitle.Render(title))
	if m.bean != nil {
		b.WriteString(styles.Muted.Render("  " + m.bean.Variety))
	}
	b.WriteString("\n\n")

	labels := []string{
		"Machine *", "Grinder *", "Grind size", "Dose (g)",
		"Extraction time (s)", "Yield (g)", "Notes",
	}
	for i, input := range m.inputs {
		label := styles.Label
		if i == m.focus {
			label = styles.LabelFocused
		}
		b.WriteString(label.Render(labels[i]) + input.View() + "\n")
	}

	ratingLabels := []string{"Rating", "Sourness", "Bitterness", "Sweetness"}
	for i, name := range ratingLabels {
		index := recTextCount + i
		label := styles.Label
		value := fmt.Sprintf("%d/10", m.ratingFor(index))
		if index == m.focus {
			label = styles.LabelFocused
			value = "< " + value + " >"
		}
		b.WriteString(label.Render(name) + value + "\n")
	}

	if m.errText != "" {
		b.WriteString("\n" + styles.ErrorLine.Render(m.errText))
	}
	if m.submitting {
		b.WriteString("\n" + styles.Muted.Render("Saving..."))
	}
	return b.String()
}
