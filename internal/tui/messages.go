package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/filter"
)

// errMsg wraps an error for display in the status line.
type errMsg struct {
	err error
}

// infoMsg carries a transient confirmation for the status line.
type infoMsg struct {
	text string
}

// loginDoneMsg is sent when a login attempt completes.
type loginDoneMsg struct {
	err error
}

// registerDoneMsg is sent when account creation completes.
type registerDoneMsg struct {
	user *api.User
	err  error
}

// beansLoadedMsg carries the bean list.
type beansLoadedMsg struct {
	beans []api.Bean
}

// beanSavedMsg is sent when a bean create/update completes.
type beanSavedMsg struct {
	bean *api.Bean
}

// beanDeletedMsg is sent when a bean deletion completes.
type beanDeletedMsg struct{}

// beanDetailLoadedMsg carries the joined result of the parallel bean +
// records fetch.
type beanDetailLoadedMsg struct {
	bean    *api.Bean
	records []api.EspressoRecord
}

// beanDetailFailedMsg is sent when either half of the bean detail join
// fails; the UI falls back to the bean list.
type beanDetailFailedMsg struct {
	err error
}

// recordFormLoadedMsg carries the joined result of the fetches seeding the
// record form: the parent bean, the user's defaults, and (in edit mode)
// the record itself.
type recordFormLoadedMsg struct {
	bean     *api.Bean
	settings *api.UserSettings
	record   *api.EspressoRecord // nil in create mode
}

// recordFormFailedMsg aborts the record form and falls back to the bean list.
type recordFormFailedMsg struct {
	err error
}

// recordSavedMsg is sent when a record create/update completes.
type recordSavedMsg struct {
	beanID int
}

// recordDeletedMsg is sent when a record deletion completes.
type recordDeletedMsg struct{}

// searchResultsMsg carries server-filtered records plus the bean lookup
// used for annotation and bean-derived criteria.
type searchResultsMsg struct {
	records []api.EspressoRecord
	beans   map[int]api.Bean
}

// settingsLoadedMsg carries the user's settings record.
type settingsLoadedMsg struct {
	settings *api.UserSettings
}

// settingsSavedMsg is sent when a settings update completes.
type settingsSavedMsg struct {
	settings *api.UserSettings
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

func (a *App) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{err: a.session.Login(context.Background(), username, password)}
	}
}

func (a *App) registerCmd(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := a.session.Register(context.Background(), username, email, password)
		return registerDoneMsg{user: user, err: err}
	}
}

func (a *App) loadBeansCmd() tea.Cmd {
	return func() tea.Msg {
		beans, err := a.client.ListBeans(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return beansLoadedMsg{beans: beans}
	}
}

func (a *App) createBeanCmd(req api.BeanCreate) tea.Cmd {
	return func() tea.Msg {
		bean, err := a.client.CreateBean(context.Background(), req)
		if err != nil {
			return errMsg{err}
		}
		return beanSavedMsg{bean: bean}
	}
}

func (a *App) updateBeanCmd(id int, req api.BeanUpdate) tea.Cmd {
	return func() tea.Msg {
		bean, err := a.client.UpdateBean(context.Background(), id, req)
		if err != nil {
			return errMsg{err}
		}
		return beanSavedMsg{bean: bean}
	}
}

func (a *App) deleteBeanCmd(id int) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.DeleteBean(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return beanDeletedMsg{}
	}
}

// loadBeanDetailCmd fetches the bean and its records in parallel and joins
// the results before rendering. If either fetch fails the whole join fails;
// there is no partial-success rendering.
func (a *App) loadBeanDetailCmd(beanID int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var (
			bean    *api.Bean
			records []api.EspressoRecord
			beanErr error
			recErr  error
			wg      sync.WaitGroup
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			bean, beanErr = a.client.GetBean(ctx, beanID)
		}()
		go func() {
			defer wg.Done()
			records, recErr = a.client.ListRecords(ctx, &api.RecordQuery{BeanID: beanID})
		}()
		wg.Wait()

		if beanErr != nil {
			return beanDetailFailedMsg{err: beanErr}
		}
		if recErr != nil {
			return beanDetailFailedMsg{err: recErr}
		}
		return beanDetailLoadedMsg{bean: bean, records: records}
	}
}

// loadRecordFormCmd fetches the form's inputs in parallel: the parent bean,
// the user's default equipment, and the record itself when editing.
func (a *App) loadRecordFormCmd(beanID, recordID int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var (
			bean     *api.Bean
			settings *api.UserSettings
			record   *api.EspressoRecord
			beanErr  error
			setErr   error
			recErr   error
			wg       sync.WaitGroup
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			bean, beanErr = a.client.GetBean(ctx, beanID)
		}()
		go func() {
			defer wg.Done()
			settings, setErr = a.client.Settings(ctx)
		}()
		if recordID != 0 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				record, recErr = a.client.GetRecord(ctx, recordID)
			}()
		}
		wg.Wait()

		for _, err := range []error{beanErr, setErr, recErr} {
			if err != nil {
				return recordFormFailedMsg{err: err}
			}
		}
		return recordFormLoadedMsg{bean: bean, settings: settings, record: record}
	}
}

func (a *App) createRecordCmd(req api.RecordCreate) tea.Cmd {
	return func() tea.Msg {
		record, err := a.client.CreateRecord(context.Background(), req)
		if err != nil {
			return errMsg{err}
		}
		return recordSavedMsg{beanID: record.BeanID}
	}
}

func (a *App) updateRecordCmd(id, beanID int, req api.RecordUpdate) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.client.UpdateRecord(context.Background(), id, req); err != nil {
			return errMsg{err}
		}
		return recordSavedMsg{beanID: beanID}
	}
}

func (a *App) deleteRecordCmd(id int) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.DeleteRecord(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return recordDeletedMsg{}
	}
}

// searchRecordsCmd issues the server-side filtered query and fetches the
// bean list in parallel, joining both into one result set.
func (a *App) searchRecordsCmd(criteria filter.Criteria) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var (
			records []api.EspressoRecord
			beans   []api.Bean
			recErr  error
			beanErr error
			wg      sync.WaitGroup
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			records, recErr = a.client.ListRecords(ctx, criteria.Query())
		}()
		go func() {
			defer wg.Done()
			beans, beanErr = a.client.ListBeans(ctx)
		}()
		wg.Wait()

		if recErr != nil {
			return errMsg{recErr}
		}
		if beanErr != nil {
			return errMsg{beanErr}
		}

		lookup := filter.BeanLookup(beans)
		return searchResultsMsg{
			records: filter.Records(records, lookup, criteria),
			beans:   lookup,
		}
	}
}

func (a *App) loadSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := a.client.Settings(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return settingsLoadedMsg{settings: settings}
	}
}

func (a *App) saveSettingsCmd(req api.UserSettingsUpdate) tea.Cmd {
	return func() tea.Msg {
		settings, err := a.client.UpdateSettings(context.Background(), req)
		if err != nil {
			return errMsg{err}
		}
		return settingsSavedMsg{settings: settings}
	}
}
