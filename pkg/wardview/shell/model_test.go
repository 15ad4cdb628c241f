package shell

import (
	"bytes"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardview/wardview/pkg/wardview/constants"
	"github.com/wardview/wardview/pkg/wardview/internal"
	"github.com/wardview/wardview/pkg/wardview/navigation"
	"github.com/wardview/wardview/pkg/wardview/records"
	"github.com/wardview/wardview/pkg/wardview/screens"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newShell(t *testing.T, locale string) (*Model, *navigation.Navigator) {
	t.Helper()
	reg := screens.Register(navigation.NewRegistry(), records.NewMemoryStore().Seed())
	nav := navigation.New(reg)
	tr, err := internal.NewTranslator(locale)
	require.NoError(t, err)

	m := New(nav, tr, screens.Dashboard)
	t.Cleanup(m.Close)
	require.NoError(t, nav.NavigateTo(screens.Dashboard))
	return m, nav
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want constants.Action
	}{
		{key: keyUp, want: constants.ActionUp},
		{key: runes("j"), want: constants.ActionDown},
		{key: keyEnter, want: constants.ActionOpen},
		{key: keyEsc, want: constants.ActionBack},
		{key: tea.KeyMsg{Type: tea.KeyBackspace}, want: constants.ActionBack},
		{key: runes("g"), want: constants.ActionHome},
		{key: tea.KeyMsg{Type: tea.KeyCtrlC}, want: constants.ActionQuit},
		{key: runes("z"), want: constants.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.want.GetName(), actionFor(tt.key).GetName())
		})
	}
}

func TestOpenAndBack(t *testing.T) {
	m, nav := newShell(t, "en")

	press(m, keyEnter)
	require.Equal(t, screens.PatientList, nav.ActiveHandle())
	patients := nav.Active()

	press(m, keyDown, keyEnter)
	require.Equal(t, screens.PatientDetails, nav.ActiveHandle())
	assert.Contains(t, m.View(), "Mary Seacole")

	press(m, keyEsc)
	assert.Same(t, patients, nav.Active())
	assert.Equal(t, 1, patients.(screens.Screen).Selected())
	assert.Equal(t, 4, m.Changes())
}

func TestBackAtRootDoesNothing(t *testing.T) {
	m, nav := newShell(t, "en")

	press(m, keyEsc, keyEsc)

	assert.Equal(t, screens.Dashboard, nav.ActiveHandle())
	assert.Equal(t, 1, m.Changes())
}

func TestHomeUnwindsHistory(t *testing.T) {
	m, nav := newShell(t, "en")
	dashboard := nav.Active()

	press(m, keyEnter, keyEnter, keyDown, keyDown, keyEnter)
	require.Equal(t, screens.MedicalRecords, nav.ActiveHandle())
	require.Equal(t, 3, nav.Depth())

	press(m, runes("g"))

	assert.Same(t, dashboard, nav.Active())
	assert.Zero(t, nav.Depth())
	assert.Empty(t, m.Banner())
}

func TestHomeNavigatesWhenNotInHistory(t *testing.T) {
	reg := screens.Register(navigation.NewRegistry(), records.NewMemoryStore().Seed())
	nav := navigation.New(reg)
	tr, err := internal.NewTranslator("en")
	require.NoError(t, err)
	m := New(nav, tr, screens.Dashboard)
	defer m.Close()
	require.NoError(t, nav.NavigateTo(screens.DoctorList))

	press(m, runes("g"))

	assert.Equal(t, screens.Dashboard, nav.ActiveHandle())
	assert.Equal(t, []navigation.Handle{screens.DoctorList}, nav.HistoryHandles())
}

func TestFailedNavigationShowsBanner(t *testing.T) {
	m, nav := newShell(t, "en")
	require.NoError(t, nav.NavigateToViewModel(screens.PatientList, brokenList()))

	press(m, keyEnter)

	assert.Equal(t, screens.PatientList, nav.ActiveHandle())
	assert.Equal(t, "Could not open Patient: patient 99 not found", m.Banner())
	assert.Contains(t, m.View(), "Could not open Patient")

	press(m, keyEsc)
	assert.Empty(t, m.Banner(), "a successful change clears the banner")
}

func TestBannerIsLocalized(t *testing.T) {
	m, nav := newShell(t, "es")
	require.NoError(t, nav.NavigateToViewModel(screens.PatientList, brokenList()))

	press(m, keyEnter)

	assert.Equal(t, "No se pudo abrir Paciente: patient 99 not found", m.Banner())
	assert.Contains(t, m.View(), "Panel")
}

func TestDescribe(t *testing.T) {
	m, _ := newShell(t, "en")

	assert.Equal(t, "Pharmacy is not available",
		m.describe("Pharmacy", &navigation.ResolutionError{Handle: "Pharmacy", Err: navigation.ErrNotRegistered}))
	assert.Equal(t, "Dashboard is already open, go back to it",
		m.describe(screens.Dashboard, &navigation.ResolutionError{Handle: screens.Dashboard, Err: navigation.ErrAlreadyShown}))
	assert.Equal(t, "Could not open Doctors",
		m.describe(screens.DoctorList, &navigation.ResolutionError{Handle: screens.DoctorList, Err: records.ErrNotFound}))
}

func TestViewRendersBreadcrumbAndRows(t *testing.T) {
	m, _ := newShell(t, "en")
	press(m, keyEnter)

	view := m.View()

	assert.Contains(t, view, "Dashboard"+constants.BreadcrumbSeparator+"Patients")
	assert.Contains(t, view, constants.Cursor+" #1  Ada Byron")
	assert.Contains(t, view, "q quit")
}

func TestQuit(t *testing.T) {
	m, nav := newShell(t, "en")

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	before := m.Changes()
	require.NoError(t, nav.NavigateTo(screens.DoctorList))
	assert.Equal(t, before, m.Changes(), "closed shell no longer observes changes")
}

func TestWindowSize(t *testing.T) {
	m, _ := newShell(t, "en")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

// fakeScreen is a one-row screen pointing at a patient that does not exist.
type fakeScreen struct{}

func (fakeScreen) Heading() string { return "" }
func (fakeScreen) Selected() int   { return 0 }
func (fakeScreen) Move(int)        {}

func (fakeScreen) Items() []screens.MenuItem {
	return []screens.MenuItem{{Text: "#99", Target: screens.PatientDetails, Parameter: screens.PatientRef{ID: 99}}}
}

func (f fakeScreen) Current() (screens.MenuItem, bool) {
	return f.Items()[0], true
}

func brokenList() *fakeScreen {
	return &fakeScreen{}
}

func TestChangeLogCarriesInstanceID(t *testing.T) {
	m, nav := newShell(t, "en")
	var buf bytes.Buffer
	m.WithLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	press(m, keyEnter)

	assert.Contains(t, buf.String(), `"instance_id":"`+nav.ActiveID().String()+`"`)
}
