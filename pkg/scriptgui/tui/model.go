package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/icon"
	"github.com/highorder/scriptgui/pkg/scriptgui/input"
	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
	"github.com/highorder/scriptgui/pkg/scriptgui/nav"
	"github.com/highorder/scriptgui/pkg/scriptgui/theme"
)

// Model is the bubbletea model rendering one Scope.
//
// It is a pointer model: the navigation observer registered in New updates
// the same value bubbletea passes back into Update.
type Model struct {
	scope  *scriptgui.Scope
	keymap *input.Keymap
	styles styles

	width  int
	height int

	drawerFocus int
	palette     *palette
	status      string
	statusError bool

	// ID of the last snackbar whose expiry was scheduled.
	snackbarTimed uint64

	unsubscribe func()
}

// New creates a model for scope. Close it with Close to drop the navigation
// subscription.
func New(scope *scriptgui.Scope, opts Options) *Model {
	m := &Model{
		scope:  scope,
		keymap: opts.keymap(),
		styles: newStyles(currentTheme()),
	}
	m.focusSection()
	m.unsubscribe = scope.Navigation().Subscribe(m.onNavigate)
	return m
}

func currentTheme() theme.Theme {
	t := theme.Current()
	if t == (theme.Theme{}) {
		t = theme.Dark()
		theme.Apply(t)
	}
	return t
}

// Close removes the model's navigation observer.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Scope() *scriptgui.Scope { return m.scope }

// Status returns the footer status line, e.g. a key-not-found message.
func (m *Model) Status() string { return m.status }

func (m *Model) onNavigate(event nav.Event[*scriptgui.Screen]) {
	m.status = ""
	m.statusError = false
	m.palette = nil
	m.focusSection()
	m.scope.Logger().Debug("Screen shown", "screen", event.To.Title(), "kind", event.Kind.String())
}

// focusSection moves the drawer cursor to the current section.
func (m *Model) focusSection() {
	section := m.scope.Section()
	if section == nil {
		return
	}
	for i, screen := range m.scope.Gui().Screens() {
		if screen == section {
			m.drawerFocus = i
			return
		}
	}
}

func (m *Model) Init() tea.Cmd {
	m.scope.Open()
	return m.afterUpdate()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case ButtonMsg:
		if msg.Pressed {
			cmd = m.handleButton(msg.Button)
		}

	case NavigateMsg:
		m.navigateTo(msg.Key)

	case NavigateToMsg:
		m.scope.Navigate(msg.Screen)

	case NavigateBackMsg:
		m.scope.Back()

	case ThemeMsg:
		theme.Apply(msg.Theme)
		m.styles = newStyles(msg.Theme)
		icon.ResetCache()

	case snackbarExpiredMsg:
		if current, ok := m.scope.Snackbar(); ok && current.ID() == msg.id {
			m.scope.DismissSnackbar(scriptgui.SnackbarDismissed)
		}

	case StopMsg:
		m.scope.Cancel()
	}

	return m, tea.Batch(cmd, m.afterUpdate())
}

// afterUpdate schedules expiry of a newly shown snackbar and quits once the
// GUI has left the running state.
func (m *Model) afterUpdate() tea.Cmd {
	if m.scope.State().IsTerminal() {
		return tea.Quit
	}

	snackbar, ok := m.scope.Snackbar()
	if !ok || snackbar.ID() == m.snackbarTimed {
		return nil
	}
	m.snackbarTimed = snackbar.ID()
	if !snackbar.Expires() {
		return nil
	}
	id := snackbar.ID()
	return tea.Tick(snackbar.Duration, func(time.Time) tea.Msg {
		return snackbarExpiredMsg{id: id}
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if m.palette != nil {
		return m.handlePaletteKey(msg)
	}

	// Frame buttons take precedence over navigation bindings, but not over
	// an open alert.
	if _, alerting := m.scope.Alert(); !alerting && key != "" {
		for _, button := range m.scope.CurrentScreen().Buttons() {
			if button.Key == key {
				m.press(button)
				return nil
			}
		}
	}

	return m.handleButton(m.keymap.Button(key))
}

func (m *Model) handleButton(button constants.VirtualButton) tea.Cmd {
	if button == constants.VirtualButtonQuit {
		m.scope.Cancel()
		return tea.Quit
	}

	if _, ok := m.scope.Alert(); ok {
		switch button {
		case constants.VirtualButtonA, constants.VirtualButtonStart:
			m.scope.ConfirmAlert()
		case constants.VirtualButtonB:
			m.scope.CancelAlert()
		}
		return nil
	}

	if snackbar, ok := m.scope.Snackbar(); ok && button == constants.VirtualButtonA {
		if snackbar.Action != "" {
			m.scope.DismissSnackbar(scriptgui.SnackbarActionPerformed)
		} else {
			m.scope.DismissSnackbar(scriptgui.SnackbarDismissed)
		}
		return nil
	}

	if m.palette != nil {
		m.handlePaletteButton(button)
		return nil
	}

	screens := m.scope.Gui().Screens()
	switch button {
	case constants.VirtualButtonUp:
		if m.drawerFocus > 0 {
			m.drawerFocus--
		}
	case constants.VirtualButtonDown:
		if m.drawerFocus < len(screens)-1 {
			m.drawerFocus++
		}
	case constants.VirtualButtonStart:
		if m.drawerFocus >= 0 && m.drawerFocus < len(screens) {
			m.scope.Navigate(screens[m.drawerFocus])
		}
	case constants.VirtualButtonB:
		m.scope.Back()
	case constants.VirtualButtonMenu:
		m.navigateTo(constants.HomeScreenKey)
	case constants.VirtualButtonL1:
		m.scope.ToggleLeftFrame()
	case constants.VirtualButtonR1:
		m.scope.ToggleRightFrame()
	case constants.VirtualButtonX:
		if fab := m.scope.CurrentScreen().FloatingAction(); fab != nil {
			m.press(*fab)
		}
	case constants.VirtualButtonSelect:
		m.openPalette()
	}
	return nil
}

func (m *Model) press(button scriptgui.Button) {
	m.scope.Logger().Debug("Button pressed", "label", button.Label, "screen", m.scope.CurrentScreen().Title())
	if button.OnPress != nil {
		button.OnPress(m.scope)
	}
}

// navigateTo navigates by key and reports unknown keys in the footer.
func (m *Model) navigateTo(key string) {
	err := m.scope.NavigateTo(key)

	var notFound *nav.KeyNotFoundError
	if errors.As(err, &notFound) {
		m.status = keyNotFoundStatus(notFound)
		m.statusError = true
	}
}

func keyNotFoundStatus(err *nav.KeyNotFoundError) string {
	msg := internal.Localize("nav.key_not_found", map[string]any{"Key": err.Key})
	if len(err.Suggestions) > 0 {
		msg += ", " + internal.Localize("nav.did_you_mean", map[string]any{
			"Suggestions": strings.Join(err.Suggestions, ", "),
		})
	}
	return msg
}
