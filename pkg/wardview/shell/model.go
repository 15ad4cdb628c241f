// Package shell hosts a navigation.Navigator in a bubbletea terminal program.
//
// bubbletea delivers every message on one goroutine, which makes it the UI thread
// the Navigator expects. Keys move the cursor of the active screen, open the row
// under it, go back, or return to the home view. Failed navigations leave the
// current view in place and show a banner until the next successful change.
package shell

import (
	"errors"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wardview/wardview/pkg/wardview/constants"
	"github.com/wardview/wardview/pkg/wardview/internal"
	"github.com/wardview/wardview/pkg/wardview/navigation"
	"github.com/wardview/wardview/pkg/wardview/screens"
)

// Model is the bubbletea model of the shell.
type Model struct {
	nav        *navigation.Navigator
	translator *internal.Translator
	styles     internal.Styles
	logger     *slog.Logger
	home       navigation.Handle

	width  int
	height int

	banner      string
	changes     int
	unsubscribe func()
}

// New creates a shell around nav. home is the view the Home action returns to.
func New(nav *navigation.Navigator, translator *internal.Translator, home navigation.Handle) *Model {
	m := &Model{
		nav:        nav,
		translator: translator,
		styles:     internal.NewStyles(internal.GetTheme()),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		home:       home,
	}
	m.unsubscribe = nav.Subscribe(m.activeChanged)
	return m
}

// WithLogger sets the logger for shell events.
func (m *Model) WithLogger(logger *slog.Logger) *Model {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// Close detaches the shell from the navigator.
func (m *Model) Close() {
	m.unsubscribe()
}

// Banner returns the error banner, empty when the last navigation succeeded.
func (m *Model) Banner() string {
	return m.banner
}

// Changes returns how many active view changes the shell has observed.
func (m *Model) Changes() int {
	return m.changes
}

func (m *Model) activeChanged() {
	m.banner = ""
	m.changes++
	m.logger.Debug("Active view changed",
		"handle", string(m.nav.ActiveHandle()),
		"instance_id", m.nav.ActiveID().String(),
		"depth", m.nav.Depth(),
		"revision", m.nav.Revision(),
	)
}

// Init sets the terminal title.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("wardview")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleAction(actionFor(msg))
	}
	return m, nil
}

func (m *Model) handleAction(action constants.Action) (tea.Model, tea.Cmd) {
	switch action {
	case constants.ActionQuit:
		m.Close()
		return m, tea.Quit

	case constants.ActionUp:
		if s, ok := m.screen(); ok {
			s.Move(-1)
		}

	case constants.ActionDown:
		if s, ok := m.screen(); ok {
			s.Move(1)
		}

	case constants.ActionOpen:
		if s, ok := m.screen(); ok {
			if item, ok := s.Current(); ok && item.Opens() {
				m.navigate(item.Target, item.Parameter)
			}
		}

	case constants.ActionBack:
		m.nav.GoBack()

	case constants.ActionHome:
		m.goHome()
	}
	return m, nil
}

// screen returns the active view-model if it is something the shell can draw.
func (m *Model) screen() (screens.Screen, bool) {
	if m.nav.IsEmpty() {
		return nil, false
	}
	s, ok := m.nav.Active().(screens.Screen)
	return s, ok
}

func (m *Model) navigate(handle navigation.Handle, parameter any) {
	var err error
	if parameter == nil {
		err = m.nav.NavigateTo(handle)
	} else {
		err = m.nav.NavigateToWithParameter(handle, parameter)
	}
	if err != nil {
		m.banner = m.describe(handle, err)
		m.logger.Warn("Navigation failed", "handle", string(handle), "error", err)
	}
}

// goHome unwinds the history to the home view if it is there, otherwise it
// navigates to it.
func (m *Model) goHome() {
	for m.nav.ActiveHandle() != m.home && m.nav.CanGoBack() {
		m.nav.GoBack()
	}
	if m.nav.ActiveHandle() != m.home {
		m.navigate(m.home, nil)
	}
}

// describe turns a navigation error into a localized banner.
func (m *Model) describe(handle navigation.Handle, err error) string {
	data := map[string]any{"Title": m.translator.Title(string(handle))}

	var initErr *navigation.InitializationError
	switch {
	case errors.Is(err, navigation.ErrNotRegistered):
		return m.translator.Message("ErrorNotRegistered", data)
	case errors.Is(err, navigation.ErrAlreadyShown):
		return m.translator.Message("ErrorAlreadyShown", data)
	case errors.As(err, &initErr):
		data["Reason"] = initErr.Err.Error()
		return m.translator.Message("ErrorInitialization", data)
	default:
		return m.translator.Message("ErrorResolution", data)
	}
}
