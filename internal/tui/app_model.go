package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-review-fetcher/internal/app"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

var errNotSavedYet = errors.New("save the CSV file first")

type screen int

const (
	screenForm screen = iota
	screenSelect
	screenFetching
	screenResults
)

type appModel struct {
	ctx       context.Context
	session   *service.Session
	exporter  service.Exporter
	exportDir string
	buildInfo models.AppBuildInfo

	currentScreen screen
	busy          bool

	form     formModel
	choose   selectModel
	fetching fetchingModel
	results  resultsModel

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newAppModel(
	ctx context.Context,
	session *service.Session,
	exporter service.Exporter,
	exportDir string,
	buildInfo models.AppBuildInfo,
) appModel {
	snap := session.Snapshot()

	form := newFormModel()
	form.setRegion(snap.Region)
	form.count = snap.Count

	return appModel{
		ctx:           ctx,
		session:       session,
		exporter:      exporter,
		exportDir:     exportDir,
		buildInfo:     buildInfo,
		currentScreen: screenForm,
		form:          form,
		fetching:      newFetchingModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.busy {
			return m, nil
		}
	case searchDoneMsg:
		return m.handleSearchDone(msg)
	case fetchDoneMsg:
		return m.handleFetchDone(msg)
	case exportSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.results.savedPath = msg.path
		m.results.status = app.ExportedTo(msg.path)
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.results.status = "Copy failed: " + msg.err.Error()
		} else {
			m.results.status = "Path copied to clipboard"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.results.status = ""
		return m, nil
	case spinner.TickMsg:
		return m.updateSpinners(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenForm:
		return m.updateForm(msg)
	case screenSelect:
		return m.updateSelect(msg)
	case screenResults:
		return m.updateResults(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenForm:
		body = m.form.View()
	case screenSelect:
		body = m.choose.View()
	case screenFetching:
		body = m.fetching.View()
	case screenResults:
		body = m.results.View()
	}

	if m.showBuildInfo {
		body = renderBuildInfoWindow(m.buildInfo)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.form.searching = false

	switch msg.snap.State {
	case service.StateAwaitingSelection:
		m.choose.reset(msg.snap.Listings)
		m.choose.region = m.form.region()
		m.choose.count = m.form.count
		m.currentScreen = screenSelect
	case service.StateNoMatches:
		m.form.notice = msg.snap.Notice
	case service.StateSearchError:
		m.showErrorf(describeFailure(msg.snap))
	}
	return m, nil
}

func (m appModel) handleFetchDone(msg fetchDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.fetching.percent = msg.snap.Progress

	if msg.err != nil {
		m.currentScreen = screenSelect
		m.showErrorf(msg.err.Error())
		return m, nil
	}

	switch msg.snap.State {
	case service.StateDisplaying:
		m.results = newResultsModel(msg.snap)
		m.currentScreen = screenResults
	case service.StateNoReviews:
		m.choose.notice = msg.snap.Notice
		m.currentScreen = screenSelect
	case service.StateFetchError:
		m.currentScreen = screenSelect
		m.showErrorf(describeFailure(msg.snap))
	}
	return m, nil
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.form.searching:
		m.form.spinner, cmd = m.form.spinner.Update(msg)
	case m.currentScreen == screenFetching:
		m.fetching.spinner, cmd = m.fetching.spinner.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.form.cycleFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.cycleFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitSearch()
		}

		// Letter shortcuts would be swallowed by the name input.
		if m.form.focus != fieldName {
			switch {
			case key.Matches(keyMsg, keys.up):
				m.form.cycleFocus(-1)
			case key.Matches(keyMsg, keys.down):
				m.form.cycleFocus(1)
			case key.Matches(keyMsg, keys.left):
				m.form.adjust(-1)
			case key.Matches(keyMsg, keys.right):
				m.form.adjust(1)
			case key.Matches(keyMsg, keys.buildInfo):
				m.showBuildInfo = true
			}
			return m, nil
		}
	}

	if m.form.focus != fieldName {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.name, cmd = m.form.name.Update(msg)
	return m, cmd
}

func (m appModel) submitSearch() (tea.Model, tea.Cmd) {
	query := m.form.query()
	if query == "" {
		m.session.Reset()
		m.form.notice = app.MsgEmptyQuery
		return m, nil
	}

	m.form.notice = ""
	m.form.searching = true
	m.busy = true
	return m, tea.Batch(m.cmdSearch(query), m.form.spinner.Tick)
}

func (m appModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.choose.move(-1)
	case key.Matches(keyMsg, keys.down):
		m.choose.move(1)
	case key.Matches(keyMsg, keys.esc):
		m.session.Reset()
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.enter):
		if len(m.choose.listings) == 0 {
			return m, nil
		}
		m.choose.notice = ""
		return m.startFetch(m.cmdFetch(m.choose.idx, m.choose.region, m.choose.count), m.choose.listings[m.choose.idx])
	}
	return m, nil
}

func (m appModel) startFetch(fetch tea.Cmd, listing models.AppListing) (tea.Model, tea.Cmd) {
	m.busy = true
	m.fetching.listing = listing
	m.fetching.percent = 0
	m.currentScreen = screenFetching
	return m, tea.Batch(fetch, m.fetching.spinner.Tick)
}

func (m appModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.save):
			m.busy = true
			return m, m.cmdSave()
		case key.Matches(keyMsg, keys.copy):
			if m.results.savedPath == "" {
				m.results.status = errNotSavedYet.Error()
				return m, cmdClearStatus()
			}
			return m, cmdCopyToClipboard(m.results.savedPath)
		case key.Matches(keyMsg, keys.refetch):
			return m.startFetch(m.cmdRefetch(m.results.region, m.results.count), m.results.listing)
		case key.Matches(keyMsg, keys.esc):
			m.session.BackToSelection()
			m.currentScreen = screenSelect
			return m, nil
		case key.Matches(keyMsg, keys.newSearch):
			m.session.Reset()
			m.form.name.SetValue("")
			m.form.notice = ""
			m.form.focusName()
			m.currentScreen = screenForm
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.results.table, cmd = m.results.table.Update(msg)
	return m, cmd
}

func (m appModel) cmdSearch(query string) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return searchDoneMsg{snap: session.Search(ctx, query)}
	}
}

func (m appModel) cmdFetch(idx int, region models.Region, count int) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		if snap, err := session.SelectIndex(idx); err != nil {
			return fetchDoneMsg{snap: snap, err: err}
		}
		snap, err := session.Fetch(ctx, region, count)
		return fetchDoneMsg{snap: snap, err: err}
	}
}

func (m appModel) cmdRefetch(region models.Region, count int) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		snap, err := session.Fetch(ctx, region, count)
		return fetchDoneMsg{snap: snap, err: err}
	}
}

func (m appModel) cmdSave() tea.Cmd {
	session := m.session
	exporter := m.exporter
	dir := m.exportDir
	return func() tea.Msg {
		file, snap, err := session.Export()
		if err != nil {
			return exportSavedMsg{snap: snap, err: err}
		}
		path, err := exporter.Save(dir, file)
		return exportSavedMsg{snap: snap, path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
