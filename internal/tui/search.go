package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/config"
	"github.com/Ivaneres/coffee/internal/filter"
	"github.com/Ivaneres/coffee/internal/tui/styles"
)

// searchModel is the cross-bean record search. Submitting with no criteria
// clears the results instead of dumping the whole history; that default is
// the opposite of the bean detail filter and is intentional.
type searchModel struct {
	cfg    *config.Config
	inputs []textinput.Model
	focus  int

	results  []api.EspressoRecord
	beans    map[int]api.Bean
	cursor   int
	searched bool

	confirming bool
	searching  bool
}

const (
	searchMachine = iota
	searchGrinder
	searchVariety
	searchRoaster
)

func newSearchModel(cfg *config.Config) *searchModel {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 64
		return in
	}
	return &searchModel{
		cfg: cfg,
		inputs: []textinput.Model{
			searchMachine: newInput("machine"),
			searchGrinder: newInput("grinder"),
			searchVariety: newInput("bean variety"),
			searchRoaster: newInput("bean roaster"),
		},
	}
}

func (m *searchModel) focusCmd() tea.Cmd {
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[0].Focus()
}

func (m *searchModel) criteria() filter.Criteria {
	return filter.Criteria{
		Machine:     m.inputs[searchMachine].Value(),
		Grinder:     m.inputs[searchGrinder].Value(),
		BeanVariety: m.inputs[searchVariety].Value(),
		BeanRoaster: m.inputs[searchRoaster].Value(),
	}
}

// searchCmd re-runs the current query; used both on submit and to refresh
// results after a deletion.
func (m *searchModel) searchCmd(app *App) tea.Cmd {
	criteria := m.criteria()
	if criteria.Empty() {
		m.results = nil
		m.beans = nil
		m.searched = false
		m.cursor = 0
		return nil
	}
	m.searching = true
	return app.searchRecordsCmd(criteria)
}

func (m *searchModel) setResults(records []api.EspressoRecord, beans map[int]api.Bean) {
	m.results = records
	m.beans = beans
	m.searched = true
	m.searching = false
	m.confirming = false
	if m.cursor >= len(records) {
		m.cursor = max(0, len(records)-1)
	}
}

func (m *searchModel) selected() *api.EspressoRecord {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return nil
	}
	return &m.results[m.cursor]
}

func (m *searchModel) update(app *App, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return cmd
	}

	if m.confirming {
		switch key.String() {
		case "y":
			m.confirming = false
			if rec := m.selected(); rec != nil {
				return app.deleteRecordCmd(rec.ID)
			}
		default:
			m.confirming = false
		}
		return nil
	}

	switch key.String() {
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	case "enter":
		return m.searchCmd(app)
	case "esc":
		return navTo(viewBeans)
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return nil
	case "d":
		if m.selected() != nil {
			m.confirming = true
		}
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *searchModel) cycleFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *searchModel) view() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Search records") + "\n\n")

	labels := []string{"Machine", "Grinder", "Bean variety", "Bean roaster"}
	for i, input := range m.inputs {
		label := styles.Label
		if i == m.focus {
			label = styles.LabelFocused
		}
		b.WriteString(label.Render(labels[i]) + input.View() + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.searching:
		b.WriteString(styles.Muted.Render("Searching..."))
	case !m.searched:
		b.WriteString(styles.Muted.Render("Enter at least one criterion and press enter."))
	case len(m.results) == 0:
		b.WriteString(styles.Muted.Render("No records match."))
	default:
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%d record(s)", len(m.results))) + "\n")
		start, end := window(m.cursor, len(m.results), m.cfg.TUI.MaxListHeight)
		for i := start; i < end; i++ {
			line := m.resultLine(m.results[i])
			if i == m.cursor {
				b.WriteString(styles.SelectedRow.Render(line))
			} else {
				b.WriteString(styles.Row.Render(line))
			}
			b.WriteString("\n")
		}
		if rec := m.selected(); rec != nil {
			b.WriteString("\n" + recordCard(*rec, m.cfg.TUI.NotesWidth))
		}
	}

	if m.confirming {
		b.WriteString("\n" + styles.Warning.Render("Delete this record? (y/n)"))
	}
	return b.String()
}

// resultLine annotates the record line with its bean when the lookup has it.
func (m *searchModel) resultLine(rec api.EspressoRecord) string {
	line := recordLine(rec)
	if bean, ok := m.beans[rec.BeanID]; ok {
		line = bean.Variety + " • " + line
	}
	return line
}
