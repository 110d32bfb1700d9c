package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-fetcher/internal/adapter"
	"github.com/MKhiriev/go-review-fetcher/internal/app"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/internal/mock"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/internal/validators"
	"github.com/MKhiriev/go-review-fetcher/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testListings = []models.AppListing{
	{Name: "WhatsApp Messenger", AppID: "com.whatsapp"},
	{Name: "WhatsApp Business", AppID: "com.whatsapp.w4b"},
}

type testDeps struct {
	search  *mock.MockSearchService
	reviews *mock.MockReviewService
}

func newTestModel(t *testing.T, exportDir string) (appModel, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		search:  mock.NewMockSearchService(ctrl),
		reviews: mock.NewMockReviewService(ctrl),
	}
	exporter := service.NewCSVExporter(metrics.Nop(), logger.Nop())
	session := service.NewSession(
		service.SessionConfig{PreviewRows: 5},
		deps.search,
		deps.reviews,
		exporter,
		validators.NewRequestValidator(),
		logger.Nop(),
	)
	return newAppModel(context.Background(), session, exporter, exportDir, models.AppBuildInfo{}), deps
}

func sampleReviews() []models.Review {
	reply := "Thanks!"
	replied := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
	return []models.Review{
		{ReviewID: "r1", PostedAt: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), Content: "Great app", Rating: 5, ResponseContent: &reply, RespondedAt: &replied},
		{ReviewID: "r2", PostedAt: time.Date(2024, 1, 14, 8, 0, 0, 0, time.UTC), Content: "Crashes", Rating: 1},
	}
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

// searched drives the model through a successful search.
func searched(t *testing.T, m appModel, deps testDeps) appModel {
	t.Helper()
	deps.search.EXPECT().Search(gomock.Any(), "whatsapp").Return(testListings, nil)

	m, _ = update(t, m, runeMsg("whatsapp"))
	m, cmd := update(t, m, keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)

	m, _ = update(t, m, m.cmdSearch("whatsapp")())
	require.Equal(t, screenSelect, m.currentScreen)
	return m
}

// ── form ──────────────────────────────────────────────────────────────────────

func TestForm_Defaults(t *testing.T) {
	m, _ := newTestModel(t, t.TempDir())

	assert.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, fieldName, m.form.focus)
	assert.Equal(t, models.DefaultRegion, m.form.region())
	assert.Equal(t, models.MinReviewCount, m.form.count)
	assert.Contains(t, m.View(), app.MsgEnterAppName)
}

func TestForm_EmptyQueryShowsNotice(t *testing.T) {
	m, _ := newTestModel(t, t.TempDir())

	m, cmd := update(t, m, keyMsg(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.False(t, m.busy)
	assert.Equal(t, app.MsgEmptyQuery, m.form.notice)
}

func TestForm_TypingGoesToNameInput(t *testing.T) {
	m, _ := newTestModel(t, t.TempDir())

	m, _ = update(t, m, runeMsg("vlc"))
	assert.Equal(t, "vlc", m.form.query())
	assert.Equal(t, models.DefaultRegion, m.form.region())
}

func TestForm_RegionAndCountSelectors(t *testing.T) {
	m, _ := newTestModel(t, t.TempDir())

	m, _ = update(t, m, keyMsg(tea.KeyTab))
	require.Equal(t, fieldRegion, m.form.focus)
	m, _ = update(t, m, keyMsg(tea.KeyRight))
	assert.Equal(t, models.RegionIN, m.form.region())
	m, _ = update(t, m, keyMsg(tea.KeyLeft))
	m, _ = update(t, m, keyMsg(tea.KeyLeft))
	assert.Equal(t, models.RegionAU, m.form.region(), "wraps around")

	m, _ = update(t, m, keyMsg(tea.KeyTab))
	require.Equal(t, fieldCount, m.form.focus)
	m, _ = update(t, m, keyMsg(tea.KeyLeft))
	assert.Equal(t, models.MinReviewCount, m.form.count, "clamped at min")
	m, _ = update(t, m, keyMsg(tea.KeyRight))
	m, _ = update(t, m, keyMsg(tea.KeyRight))
	assert.Equal(t, 30, m.form.count)

	for range 30 {
		m, _ = update(t, m, keyMsg(tea.KeyRight))
	}
	assert.Equal(t, models.MaxReviewCount, m.form.count, "clamped at max")

	m, _ = update(t, m, keyMsg(tea.KeyTab))
	assert.Equal(t, fieldName, m.form.focus)
}

func TestForm_BuildInfoOnlyOutsideNameInput(t *testing.T) {
	m, _ := newTestModel(t, t.TempDir())

	m, _ = update(t, m, runeMsg("v"))
	assert.False(t, m.showBuildInfo)
	assert.Equal(t, "v", m.form.query())

	m, _ = update(t, m, keyMsg(tea.KeyTab))
	m, _ = update(t, m, runeMsg("v"))
	assert.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), models.NotAvailable)

	m, _ = update(t, m, keyMsg(tea.KeyEsc))
	assert.False(t, m.showBuildInfo)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, t.TempDir())

	_, cmd := update(t, m, keyMsg(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

// ── search ────────────────────────────────────────────────────────────────────

func TestSearch_ShowsListings(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	m = searched(t, m, deps)

	assert.False(t, m.busy)
	assert.False(t, m.form.searching)
	assert.Equal(t, testListings, m.choose.listings)
	assert.Contains(t, m.View(), "WhatsApp Messenger (ID: com.whatsapp)")
}

func TestSearch_NoMatches(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	deps.search.EXPECT().Search(gomock.Any(), "zzzz").Return([]models.AppListing{}, nil)

	m, _ = update(t, m, m.cmdSearch("zzzz")())
	assert.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, app.MsgNoMatchingApps, m.form.notice)
}

func TestSearch_FailureShowsOverlay(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	deps.search.EXPECT().Search(gomock.Any(), "whatsapp").Return(nil, adapter.ErrTooManyRequests)

	m, _ = update(t, m, m.cmdSearch("whatsapp")())
	assert.Equal(t, screenForm, m.currentScreen)
	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, app.MsgSearchFailed)
	assert.Contains(t, m.errorOverlay.message, "rate limiting")

	m, _ = update(t, m, keyMsg(tea.KeyEnter))
	assert.False(t, m.showError)
}

func TestBusy_IgnoresKeys(t *testing.T) {
	m, _ := newTestModel(t, t.TempDir())
	m.busy = true

	m, cmd := update(t, m, runeMsg("abc"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.form.query())
}

// ── selection and fetch ───────────────────────────────────────────────────────

func TestSelect_CursorIsClamped(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	m = searched(t, m, deps)

	m, _ = update(t, m, keyMsg(tea.KeyUp))
	assert.Equal(t, 0, m.choose.idx)
	m, _ = update(t, m, keyMsg(tea.KeyDown))
	m, _ = update(t, m, keyMsg(tea.KeyDown))
	assert.Equal(t, 1, m.choose.idx)
}

func TestSelect_EscReturnsToForm(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	m = searched(t, m, deps)

	m, _ = update(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, service.StateIdle, m.session.Snapshot().State)
}

func TestFetch_ShowsPreview(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	m = searched(t, m, deps)
	deps.reviews.EXPECT().
		Fetch(gomock.Any(), models.FetchRequest{AppID: "com.whatsapp.w4b", Region: models.RegionUS, Count: 10}).
		Return(models.FetchResult{Reviews: sampleReviews()})

	m, _ = update(t, m, keyMsg(tea.KeyDown))
	m, cmd := update(t, m, keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, screenFetching, m.currentScreen)
	assert.True(t, m.busy)
	assert.Contains(t, m.View(), app.MsgFetching)

	m, _ = update(t, m, m.cmdFetch(1, models.RegionUS, 10)())
	require.Equal(t, screenResults, m.currentScreen)
	assert.False(t, m.busy)
	assert.Equal(t, 2, m.results.total)

	rows := m.results.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "15/01/24", rows[0][0])
	assert.Equal(t, "Thanks!", rows[0][3])
	assert.Equal(t, "-", rows[1][3])
}

func TestFetch_NoReviews(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	m = searched(t, m, deps)
	deps.reviews.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(models.FetchResult{Reviews: []models.Review{}})

	m, _ = update(t, m, m.cmdFetch(0, models.RegionGB, 10)())
	assert.Equal(t, screenSelect, m.currentScreen)
	assert.Equal(t, app.MsgNoReviews, m.choose.notice)
}

func TestFetch_FailureShowsOverlay(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	m = searched(t, m, deps)
	deps.reviews.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(models.FetchResult{Err: errors.New("boom")})

	m, _ = update(t, m, m.cmdFetch(0, models.RegionUS, 10)())
	assert.Equal(t, screenSelect, m.currentScreen)
	require.True(t, m.showError)
	assert.Equal(t, app.MsgFetchFailed+": boom", m.errorOverlay.message)
}

func TestFetch_InvalidCountIsRejected(t *testing.T) {
	m, deps := newTestModel(t, t.TempDir())
	m = searched(t, m, deps)

	m, _ = update(t, m, m.cmdFetch(0, models.RegionUS, 15)())
	assert.Equal(t, screenSelect, m.currentScreen)
	assert.True(t, m.showError)
}

// ── results ───────────────────────────────────────────────────────────────────

func fetched(t *testing.T, exportDir string) (appModel, testDeps) {
	t.Helper()
	m, deps := newTestModel(t, exportDir)
	m = searched(t, m, deps)
	deps.reviews.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(models.FetchResult{Reviews: sampleReviews()})

	m, _ = update(t, m, m.cmdFetch(0, models.RegionUS, 10)())
	require.Equal(t, screenResults, m.currentScreen)
	return m, deps
}

func TestResults_SaveWritesCSV(t *testing.T) {
	dir := t.TempDir()
	m, _ := fetched(t, dir)

	m, cmd := update(t, m, runeMsg("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	m, _ = update(t, m, m.cmdSave()())
	assert.False(t, m.busy)
	assert.False(t, m.showError)

	want := filepath.Join(dir, "com.whatsapp_reviews.csv")
	assert.Equal(t, want, m.results.savedPath)
	assert.Equal(t, app.ExportedTo(want), m.results.status)
	assert.Equal(t, service.StateExported, m.session.Snapshot().State)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date,Review,Rating,Response_date,Response\n")
	assert.Contains(t, string(data), "15/01/24,Great app,5,16/01/24,Thanks!\n")
}

func TestResults_SaveIntoMissingDirFails(t *testing.T) {
	m, _ := fetched(t, filepath.Join(t.TempDir(), "missing"))

	m, _ = update(t, m, m.cmdSave()())
	assert.True(t, m.showError)
	assert.Empty(t, m.results.savedPath)
}

func TestResults_CopyBeforeSave(t *testing.T) {
	m, _ := fetched(t, t.TempDir())

	m, cmd := update(t, m, runeMsg("c"))
	require.NotNil(t, cmd)
	assert.Equal(t, errNotSavedYet.Error(), m.results.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.results.status)
}

func TestResults_Refetch(t *testing.T) {
	m, deps := fetched(t, t.TempDir())
	deps.reviews.EXPECT().
		Fetch(gomock.Any(), models.FetchRequest{AppID: "com.whatsapp", Region: models.RegionUS, Count: 10}).
		Return(models.FetchResult{Reviews: sampleReviews()[:1]})

	m, cmd := update(t, m, runeMsg("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, screenFetching, m.currentScreen)

	m, _ = update(t, m, m.cmdRefetch(models.RegionUS, 10)())
	assert.Equal(t, screenResults, m.currentScreen)
	assert.Equal(t, 1, m.results.total)
}

func TestResults_BackAndNewSearch(t *testing.T) {
	m, _ := fetched(t, t.TempDir())

	m, _ = update(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, screenSelect, m.currentScreen)
	snap := m.session.Snapshot()
	assert.Equal(t, service.StateAwaitingSelection, snap.State)
	assert.Empty(t, snap.Rows)

	m, _ = fetchedAgain(t, m)
	m, _ = update(t, m, runeMsg("n"))
	assert.Equal(t, screenForm, m.currentScreen)
	assert.Empty(t, m.form.query())
	assert.Equal(t, fieldName, m.form.focus)
	assert.Equal(t, service.StateIdle, m.session.Snapshot().State)
}

// fetchedAgain puts a model that is back on the selection screen into results
// without going through the store.
func fetchedAgain(t *testing.T, m appModel) (appModel, tea.Cmd) {
	t.Helper()
	snap := m.session.Snapshot()
	snap.State = service.StateDisplaying
	return update(t, m, fetchDoneMsg{snap: snap})
}
