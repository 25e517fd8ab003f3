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
	"github.com/Ivaneres/coffee/internal/util"
)

// beanDetailModel shows one bean with its brew history. The filter inputs
// narrow the already-fetched record list locally; with no criteria the full
// history is shown.
type beanDetailModel struct {
	cfg    *config.Config
	beanID int

	bean     *api.Bean
	records  []api.EspressoRecord
	filtered []api.EspressoRecord

	cursor     int
	loaded     bool
	confirming bool

	filtering   bool
	filterFocus int
	machineIn   textinput.Model
	grinderIn   textinput.Model
}

func newBeanDetailModel(cfg *config.Config, beanID int) *beanDetailModel {
	machine := textinput.New()
	machine.Placeholder = "machine"
	machine.CharLimit = 64

	grinder := textinput.New()
	grinder.Placeholder = "grinder"
	grinder.CharLimit = 64

	return &beanDetailModel{
		cfg:       cfg,
		beanID:    beanID,
		machineIn: machine,
		grinderIn: grinder,
	}
}

func (m *beanDetailModel) setData(bean *api.Bean, records []api.EspressoRecord) {
	m.bean = bean
	m.records = records
	m.loaded = true
	m.confirming = false
	m.applyFilter()
}

func (m *beanDetailModel) criteria() filter.Criteria {
	return filter.Criteria{
		Machine: m.machineIn.Value(),
		Grinder: m.grinderIn.Value(),
	}
}

func (m *beanDetailModel) applyFilter() {
	lookup := map[int]api.Bean{}
	if m.bean != nil {
		lookup[m.bean.ID] = *m.bean
	}
	m.filtered = filter.Records(m.records, lookup, m.criteria())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m *beanDetailModel) selected() *api.EspressoRecord {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.cursor]
}

func (m *beanDetailModel) update(app *App, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.filtering {
			return m.updateFilterInputs(msg)
		}
		return nil
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

	if m.filtering {
		switch key.String() {
		case "esc", "enter":
			m.filtering = false
			m.machineIn.Blur()
			m.grinderIn.Blur()
			return nil
		case "tab", "shift+tab":
			m.filterFocus = 1 - m.filterFocus
			if m.filterFocus == 0 {
				m.grinderIn.Blur()
				return m.machineIn.Focus()
			}
			m.machineIn.Blur()
			return m.grinderIn.Focus()
		}
		cmd := m.updateFilterInputs(msg)
		m.applyFilter()
		return cmd
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "/":
		m.filtering = true
		m.filterFocus = 0
		m.grinderIn.Blur()
		return m.machineIn.Focus()
	case "a":
		return openRecordForm(m.beanID, 0)
	case "e":
		if rec := m.selected(); rec != nil {
			return openRecordForm(m.beanID, rec.ID)
		}
	case "d":
		if m.selected() != nil {
			m.confirming = true
		}
	case "r":
		return app.loadBeanDetailCmd(m.beanID)
	case "esc":
		return navTo(viewBeans)
	}
	return nil
}

func (m *beanDetailModel) updateFilterInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.filterFocus == 0 {
		m.machineIn, cmd = m.machineIn.Update(msg)
	} else {
		m.grinderIn, cmd = m.grinderIn.Update(msg)
	}
	return cmd
}

func (m *beanDetailModel) view() string {
	var b strings.Builder

	if !m.loaded || m.bean == nil {
		return styles.Muted.Render("Loading...")
	}

	b.WriteString(styles.Subtitle.Render(m.bean.Variety))
	var meta []string
	if m.bean.Roaster != nil {
		meta = append(meta, "roasted by "+*m.bean.Roaster)
	}
	if m.bean.Seller != nil {
		meta = append(meta, "from "+*m.bean.Seller)
	}
	if m.bean.RoastLevel != nil {
		meta = append(meta, *m.bean.RoastLevel+" roast")
	}
	if len(meta) > 0 {
		b.WriteString(styles.Muted.Render("  " + strings.Join(meta, ", ")))
	}
	b.WriteString("\n\n")

	if m.filtering || !m.criteria().Empty() {
		b.WriteString(styles.Label.Render("Filter machine") + m.machineIn.View() + "\n")
		b.WriteString(styles.Label.Render("Filter grinder") + m.grinderIn.View() + "\n\n")
	}

	if len(m.filtered) == 0 {
		if len(m.records) == 0 {
			b.WriteString(styles.Muted.Render("No records yet. Press 'a' to log a shot."))
		} else {
			b.WriteString(styles.Muted.Render("No records match the filter."))
		}
		return b.String()
	}

	start, end := window(m.cursor, len(m.filtered), m.cfg.TUI.MaxListHeight)
	for i := start; i < end; i++ {
		line := recordLine(m.filtered[i])
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
	if m.confirming {
		b.WriteString("\n" + styles.Warning.Render("Delete this record? (y/n)"))
	}
	return b.String()
}

// recordLine is the one-line list representation of a record.
func recordLine(rec api.EspressoRecord) string {
	parts := []string{rec.Machine, rec.Grinder}
	if rec.Dose != nil && rec.YieldAmount != nil {
		parts = append(parts, fmt.Sprintf("%sg in / %sg out",
			util.FormatFloat(*rec.Dose), util.FormatFloat(*rec.YieldAmount)))
	}
	if rec.Rating != nil {
		parts = append(parts, fmt.Sprintf("rated %d/10", *rec.Rating))
	}
	return strings.Join(parts, " • ")
}

// recordCard renders the full detail of one record.
func recordCard(rec api.EspressoRecord, notesWidth int) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(styles.Label.Render(label) + value + "\n")
	}

	row("Machine", rec.Machine)
	row("Grinder", rec.Grinder)
	if rec.GrindSize != nil {
		row("Grind size", *rec.GrindSize)
	}
	row("Dose", util.FormatOptionalFloat(rec.Dose, "g"))
	row("Extraction time", util.FormatOptionalFloat(rec.ExtractionTime, "s"))
	row("Yield", util.FormatOptionalFloat(rec.YieldAmount, "g"))
	row("Rating", ratingBar(rec.Rating))
	row("Sourness", ratingBar(rec.Sourness))
	row("Bitterness", ratingBar(rec.Bitterness))
	row("Sweetness", ratingBar(rec.Sweetness))
	if rec.Notes != nil && *rec.Notes != "" {
		notes := *rec.Notes
		if notesWidth > 3 {
			// Width-aware so styled or wide-rune notes still fit the card.
			notes = util.TruncateANSI(notes, notesWidth)
		}
		row("Notes", notes)
	}
	return styles.ContentBox.Render(strings.TrimRight(b.String(), "\n"))
}

// ratingBar renders a 1-10 rating as a filled bar, or "-" when absent.
func ratingBar(p *int) string {
	if p == nil {
		return "-"
	}
	n := *p
	if n < 1 {
		n = 1
	}
	if n > 10 {
		n = 10
	}
	return styles.Primary.Render(strings.Repeat("█", n)) +
		styles.Muted.Render(strings.Repeat("░", 10-n)) +
		fmt.Sprintf(" %d/10", n)
}
