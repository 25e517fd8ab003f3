package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/config"
	"github.com/Ivaneres/coffee/internal/tui/styles"
)

// beansModel is the authenticated home view: all beans owned by the user.
type beansModel struct {
	cfg        *config.Config
	beans      []api.Bean
	cursor     int
	loaded     bool
	confirming bool // delete confirmation pending
}

func newBeansModel(cfg *config.Config) *beansModel {
	return &beansModel{cfg: cfg}
}

func (m *beansModel) setBeans(beans []api.Bean) {
	m.beans = beans
	m.loaded = true
	m.confirming = false
	if m.cursor >= len(beans) {
		m.cursor = max(0, len(beans)-1)
	}
}

func (m *beansModel) selected() *api.Bean {
	if m.cursor < 0 || m.cursor >= len(m.beans) {
		return nil
	}
	return &m.beans[m.cursor]
}

func (m *beansModel) update(app *App, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.confirming {
		switch key.String() {
		case "y":
			m.confirming = false
			if bean := m.selected(); bean != nil {
				return app.deleteBeanCmd(bean.ID)
			}
		default:
			m.confirming = false
		}
		return nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.beans)-1 {
			m.cursor++
		}
	case "enter":
		if bean := m.selected(); bean != nil {
			return openBeanDetail(bean.ID)
		}
	case "a":
		return openBeanForm(nil)
	case "e":
		if bean := m.selected(); bean != nil {
			return openBeanForm(bean)
		}
	case "d":
		if m.selected() != nil {
			m.confirming = true
		}
	case "s":
		return navTo(viewSearch)
	case "o":
		return navTo(viewSettings)
	case "r":
		return app.loadBeansCmd()
	case "q":
		return tea.Quit
	case "ctrl+l":
		return func() tea.Msg {
			if err := app.session.Logout(); err != nil {
				return errMsg{err}
			}
			return navMsg{target: viewLogin}
		}
	}
	return nil
}

func (m *beansModel) view() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Your beans") + "\n\n")

	if !m.loaded {
		return b.String() + styles.Muted.Render("Loading...")
	}
	if len(m.beans) == 0 {
		return b.String() + styles.Muted.Render("No beans yet. Press 'a' to add your first bean.")
	}

	start, end := window(m.cursor, len(m.beans), m.cfg.TUI.MaxListHeight)
	for i := start; i < end; i++ {
		bean := m.beans[i]
		line := bean.Variety
		if bean.Roaster != nil {
			line += styles.Muted.Render(" • " + *bean.Roaster)
		}
		if bean.RoastLevel != nil {
			line += styles.Muted.Render(" (" + *bean.RoastLevel + ")")
		}
		if i == m.cursor {
			b.WriteString(styles.SelectedRow.Render(line))
		} else {
			b.WriteString(styles.Row.Render(line))
		}
		b.WriteString("\n")
	}

	if m.confirming {
		if bean := m.selected(); bean != nil {
			b.WriteString("\n" + styles.Warning.Render(
				fmt.Sprintf("Delete bean %q and all its records? (y/n)", bean.Variety)))
		}
	}
	return b.String()
}

// window computes the visible slice bounds so the cursor stays on screen.
func window(cursor, total, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}
