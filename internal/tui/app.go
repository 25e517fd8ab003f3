// Package tui implements the interactive terminal interface of the coffee
// client: login/register, bean list and detail, record forms, search and
// settings views. Views fetch on entry and render from local state; every
// mutation re-fetches the affected list rather than patching it optimistically.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/config"
	"github.com/Ivaneres/coffee/internal/logging"
	"github.com/Ivaneres/coffee/internal/session"
	"github.com/Ivaneres/coffee/internal/tui/styles"
)

// view identifies the active screen.
type view int

const (
	viewLogin view = iota
	viewRegister
	viewBeans
	viewBeanForm
	viewBeanDetail
	viewRecordForm
	viewSearch
	viewSettings
)

// App bundles the dependencies the TUI needs.
type App struct {
	client  *api.Client
	session *session.Session
	cfg     *config.Config
	logger  *logging.Logger
}

// New creates the TUI application.
func New(client *api.Client, sess *session.Session, cfg *config.Config, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{client: client, session: sess, cfg: cfg, logger: logger}
}

// Run launches the TUI and blocks until the user quits.
func (a *App) Run() error {
	p := tea.NewProgram(newRootModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// navMsg switches to a view that needs no parameters.
type navMsg struct {
	target view
}

// openBeanDetailMsg opens the detail view for one bean.
type openBeanDetailMsg struct {
	beanID int
}

// openBeanFormMsg opens the bean form; bean is nil in create mode.
type openBeanFormMsg struct {
	bean *api.Bean
}

// openRecordFormMsg opens the record form; recordID is 0 in create mode.
type openRecordFormMsg struct {
	beanID   int
	recordID int
}

func navTo(target view) tea.Cmd {
	return func() tea.Msg { return navMsg{target: target} }
}

func openBeanDetail(beanID int) tea.Cmd {
	return func() tea.Msg { return openBeanDetailMsg{beanID: beanID} }
}

func openBeanForm(bean *api.Bean) tea.Cmd {
	return func() tea.Msg { return openBeanFormMsg{bean: bean} }
}

func openRecordForm(beanID, recordID int) tea.Cmd {
	return func() tea.Msg { return openRecordFormMsg{beanID: beanID, recordID: recordID} }
}

// rootModel routes messages to the active view and renders the shell
// (title, status line, help bar). The shell stays usable even when a view
// is stuck in a failed load.
type rootModel struct {
	app    *App
	active view
	width  int
	height int

	errText  string
	infoText string

	login      *loginModel
	register   *registerModel
	beans      *beansModel
	beanForm   *beanFormModel
	beanDetail *beanDetailModel
	recordForm *recordFormModel
	search     *searchModel
	settings   *settingsModel
}

func newRootModel(app *App) *rootModel {
	m := &rootModel{
		app:      app,
		login:    newLoginModel(),
		register: newRegisterModel(),
		beans:    newBeansModel(app.cfg),
		search:   newSearchModel(app.cfg),
		settings: newSettingsModel(),
	}
	// Protected views are gated on token presence only; a stale token
	// surfaces as a failed API call, not here.
	if app.session.Authenticated() {
		m.active = viewBeans
	} else {
		m.active = viewLogin
	}
	return m
}

// Init implements tea.Model.
func (m *rootModel) Init() tea.Cmd {
	if m.active == viewBeans {
		return m.app.loadBeansCmd()
	}
	return m.login.focusCmd()
}

// Update implements tea.Model.
func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Keys reset the status line; the shell quit key always works.
		m.errText = ""
		m.infoText = ""
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case errMsg:
		m.errText = api.ExtractMessage(msg.err)
		// A failed mutation must re-enable the submitting view.
		if m.beanForm != nil {
			m.beanForm.submitting = false
		}
		if m.recordForm != nil {
			m.recordForm.submitting = false
		}
		m.search.searching = false
		m.settings.submitting = false
		return m, nil

	case infoMsg:
		m.infoText = msg.text
		return m, nil

	case navMsg:
		return m, m.switchTo(msg.target)

	case openBeanDetailMsg:
		m.beanDetail = newBeanDetailModel(m.app.cfg, msg.beanID)
		m.active = viewBeanDetail
		return m, m.app.loadBeanDetailCmd(msg.beanID)

	case openBeanFormMsg:
		m.beanForm = newBeanFormModel(msg.bean)
		m.active = viewBeanForm
		return m, m.beanForm.focusCmd()

	case openRecordFormMsg:
		m.recordForm = newRecordFormModel(m.app.cfg, msg.beanID, msg.recordID)
		m.active = viewRecordForm
		return m, m.app.loadRecordFormCmd(msg.beanID, msg.recordID)

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.errText = api.ExtractMessage(msg.err)
			return m, nil
		}
		m.login.reset()
		return m, m.switchTo(viewBeans)

	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.errText = api.ExtractMessage(msg.err)
			return m, nil
		}
		// Registration does not log the new user in.
		m.register.reset()
		m.infoText = "Account created for " + msg.user.Username + ", please log in"
		return m, m.switchTo(viewLogin)

	case beansLoadedMsg:
		m.beans.setBeans(msg.beans)
		return m, nil

	case beanSavedMsg:
		m.infoText = "Saved bean " + msg.bean.Variety
		return m, m.switchTo(viewBeans)

	case beanDeletedMsg:
		m.infoText = "Bean deleted"
		return m, m.switchTo(viewBeans)

	case beanDetailLoadedMsg:
		if m.beanDetail != nil {
			m.beanDetail.setData(msg.bean, msg.records)
		}
		return m, nil

	case beanDetailFailedMsg:
		// Either half of the join failed: fall back to the bean list.
		m.errText = api.ExtractMessage(msg.err)
		return m, m.switchTo(viewBeans)

	case recordFormLoadedMsg:
		if m.recordForm != nil {
			return m, m.recordForm.seed(msg)
		}
		return m, nil

	case recordFormFailedMsg:
		m.errText = api.ExtractMessage(msg.err)
		return m, m.switchTo(viewBeans)

	case recordSavedMsg:
		m.infoText = "Record saved"
		return m, openBeanDetail(msg.beanID)

	case recordDeletedMsg:
		m.infoText = "Record deleted"
		// Re-fetch rather than patch local state.
		switch m.active {
		case viewBeanDetail:
			if m.beanDetail != nil {
				return m, m.app.loadBeanDetailCmd(m.beanDetail.beanID)
			}
		case viewSearch:
			return m, m.search.searchCmd(m.app)
		}
		return m, nil

	case searchResultsMsg:
		m.search.setResults(msg.records, msg.beans)
		return m, nil

	case settingsLoadedMsg:
		return m, m.settings.load(msg.settings)

	case settingsSavedMsg:
		m.settings.load(msg.settings)
		m.infoText = "Settings saved"
		return m, nil
	}

	return m, m.updateActive(msg)
}

// switchTo activates a view and kicks off its load.
func (m *rootModel) switchTo(target view) tea.Cmd {
	m.active = target
	switch target {
	case viewLogin:
		return m.login.focusCmd()
	case viewRegister:
		return m.register.focusCmd()
	case viewBeans:
		return m.app.loadBeansCmd()
	case viewSearch:
		return m.search.focusCmd()
	case viewSettings:
		return m.app.loadSettingsCmd()
	}
	return nil
}

// updateActive forwards a message to the active view.
func (m *rootModel) updateActive(msg tea.Msg) tea.Cmd {
	switch m.active {
	case viewLogin:
		return m.login.update(m.app, msg)
	case viewRegister:
		return m.register.update(m.app, msg)
	case viewBeans:
		return m.beans.update(m.app, msg)
	case viewBeanForm:
		if m.beanForm != nil {
			return m.beanForm.update(m.app, msg)
		}
	case viewBeanDetail:
		if m.beanDetail != nil {
			return m.beanDetail.update(m.app, msg)
		}
	case viewRecordForm:
		if m.recordForm != nil {
			return m.recordForm.update(m.app, msg)
		}
	case viewSearch:
		return m.search.update(m.app, msg)
	case viewSettings:
		return m.settings.update(m.app, msg)
	}
	return nil
}

// View implements tea.Model.
func (m *rootModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("coffee · espresso brew log"))
	if user := m.app.session.CurrentUser(); user != nil {
		b.WriteString(styles.Subtitle.Render("  " + user.Username))
	}
	b.WriteString("\n\n")

	switch m.active {
	case viewLogin:
		b.WriteString(m.login.view())
	case viewRegister:
		b.WriteString(m.register.view())
	case viewBeans:
		b.WriteString(m.beans.view())
	case viewBeanForm:
		if m.beanForm != nil {
			b.WriteString(m.beanForm.view())
		}
	case viewBeanDetail:
		if m.beanDetail != nil {
			b.WriteString(m.beanDetail.view())
		}
	case viewRecordForm:
		if m.recordForm != nil {
			b.WriteString(m.recordForm.view())
		}
	case viewSearch:
		b.WriteString(m.search.view())
	case viewSettings:
		b.WriteString(m.settings.view())
	}

	if m.errText != "" {
		b.WriteString("\n" + styles.ErrorLine.Render(m.errText))
	} else if m.infoText != "" {
		b.WriteString("\n" + styles.InfoLine.Render(m.infoText))
	}

	b.WriteString("\n" + styles.HelpBar.Render(m.helpText()))
	return b.String()
}

func (m *rootModel) helpText() string {
	switch m.active {
	case viewLogin:
		return "tab: next field • enter: log in • ctrl+r: register • ctrl+c: quit"
	case viewRegister:
		return "tab: next field • enter: create account • esc: back to login • ctrl+c: quit"
	case viewBeans:
		return "enter: open • a: add • e: edit • d: delete • s: search • o: settings • r: reload • ctrl+l: log out • ctrl+c: quit"
	case viewBeanForm:
		return "tab: next field • ←/→: roast level • enter: save • esc: cancel"
	case viewBeanDetail:
		return "a: add record • e: edit • d: delete • /: filter • esc: back"
	case viewRecordForm:
		return "tab: next field • ←/→: adjust rating • ctrl+s: save • esc: cancel"
	case viewSearch:
		return "tab: next field • enter: search • d: delete record • esc: back"
	case viewSettings:
		return "tab: next field • enter: save • esc: back"
	}
	return ""
}
