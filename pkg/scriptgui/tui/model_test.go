package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/nav"
	"github.com/highorder/scriptgui/pkg/scriptgui/theme"
)

type fixture struct {
	gui      *scriptgui.Gui
	pageOne  *scriptgui.Screen
	settings *scriptgui.Screen
	pageTwo  *scriptgui.Screen

	confirmed int
	cancelled int
	snackbars []scriptgui.SnackbarResult
	fabPushed int
}

func newFixture() *fixture {
	f := &fixture{}
	b := scriptgui.New("My Script", constants.IconLogo)

	f.pageOne = b.Screen("Page One", constants.IconOne, func(s *scriptgui.ScreenBuilder) {
		s.Main(func(scriptgui.FrameContext) string { return "page one body" })
		s.Right(func(scriptgui.FrameContext) string { return "right frame" },
			scriptgui.Button{Label: "Settings", Key: "s", OnPress: func(scope *scriptgui.Scope) {
				_ = scope.NavigateTo("Page One Settings")
			}})
		s.FloatingAction(scriptgui.Button{Label: "Build", OnPress: func(*scriptgui.Scope) { f.fabPushed++ }})
		f.settings = s.Screen("Settings", "Page One Settings", func(s *scriptgui.ScreenBuilder) {
			s.Main(func(scriptgui.FrameContext) string { return "nested settings" })
		})
	})

	f.pageTwo = b.Screen("Page Two", constants.IconTwo, func(s *scriptgui.ScreenBuilder) {
		s.Main(func(scriptgui.FrameContext) string { return "page two body" },
			scriptgui.Button{Label: "Alert", Key: "d", OnPress: func(scope *scriptgui.Scope) {
				scope.DispatchAlert(scriptgui.Alert{
					Title:     "Delete build?",
					Message:   "This cannot be undone.",
					OnConfirm: func() { f.confirmed++ },
					OnCancel:  func() { f.cancelled++ },
				})
			}},
			scriptgui.Button{Label: "Snackbar", Key: "b", OnPress: func(scope *scriptgui.Scope) {
				scope.DispatchSnackbar(scriptgui.Snackbar{
					Message:  "Build queued",
					Action:   "Undo",
					OnResult: func(r scriptgui.SnackbarResult) { f.snackbars = append(f.snackbars, r) },
				})
			}},
			scriptgui.Button{Label: "Done", Key: "c", OnPress: func(scope *scriptgui.Scope) {
				scope.Complete()
			}},
		)
	})

	f.gui = b.Build()
	return f
}

func newModel(t *testing.T, f *fixture, opts ...scriptgui.ScopeOption) *Model {
	t.Helper()
	scope, err := scriptgui.NewScope(f.gui, opts...)
	require.NoError(t, err)
	m := New(scope, Options{})
	t.Cleanup(m.Close)
	m.Init()
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func TestStartsOnHome(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	assert.Equal(t, f.gui.Home(), m.Scope().CurrentScreen())
	assert.Equal(t, 0, m.drawerFocus)

	view := m.View()
	assert.Contains(t, view, "My Script")
	assert.Contains(t, view, "Welcome to My Script")
	assert.Contains(t, view, "Page One")
	assert.Contains(t, view, "Page Two")
}

func TestStartScreenOption(t *testing.T) {
	f := newFixture()
	m := newModel(t, f, scriptgui.WithStartScreen("Page Two"))

	assert.Equal(t, f.pageTwo, m.Scope().CurrentScreen())
	assert.Equal(t, 2, m.drawerFocus, "drawer cursor follows the section")
}

func TestDrawerNavigation(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	press(m, "down", "enter")
	assert.Equal(t, f.pageOne, m.Scope().CurrentScreen())

	press(m, "up", "up", "up")
	assert.Equal(t, 0, m.drawerFocus, "cursor stops at the top")

	press(m, "j", "j", "j", "j", "j", "j")
	assert.Equal(t, len(f.gui.Screens())-1, m.drawerFocus, "cursor stops at the bottom")
}

func TestFrameButtonNavigatesToNestedScreenAndBack(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)
	m.Update(NavigateToMsg{Screen: f.pageOne})

	press(m, "]")
	require.True(t, f.pageOne.IsRightFrameVisible())
	assert.Contains(t, m.View(), "right frame")

	press(m, "s")
	assert.Equal(t, f.settings, m.Scope().CurrentScreen())
	assert.Equal(t, []*scriptgui.Screen{f.pageOne}, m.Scope().Navigation().BackStack())

	view := m.View()
	assert.Contains(t, view, "Page One "+constants.GlyphCrumb+" Settings")
	assert.Contains(t, view, constants.GlyphBack)

	press(m, "esc")
	assert.Equal(t, f.pageOne, m.Scope().CurrentScreen())
	assert.Empty(t, m.Scope().Navigation().BackStack())

	press(m, "esc")
	assert.Equal(t, f.pageOne, m.Scope().CurrentScreen(), "back on an empty stack is a no-op")
}

func TestHiddenFrameButtonsAreInactive(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)
	m.Update(NavigateToMsg{Screen: f.pageOne})

	press(m, "s")
	assert.Equal(t, f.pageOne, m.Scope().CurrentScreen())
}

func TestFrameToggles(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)
	m.Update(NavigateToMsg{Screen: f.pageOne})

	press(m, "]")
	assert.True(t, f.pageOne.IsRightFrameVisible())
	press(m, "]")
	assert.False(t, f.pageOne.IsRightFrameVisible())

	m.Update(ButtonMsg{Button: constants.VirtualButtonR1, Pressed: true})
	assert.True(t, f.pageOne.IsRightFrameVisible())
	m.Update(ButtonMsg{Button: constants.VirtualButtonR1, Pressed: false})
	assert.True(t, f.pageOne.IsRightFrameVisible(), "releases are ignored")
}

func TestFloatingAction(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)
	m.Update(NavigateToMsg{Screen: f.pageOne})

	assert.Contains(t, m.View(), constants.GlyphAction+" Build")
	press(m, "x")
	assert.Equal(t, 1, f.fabPushed)
}

func TestHomeKey(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)
	m.Update(NavigateMsg{Key: "Page One Settings"})
	require.Equal(t, f.settings, m.Scope().CurrentScreen())

	press(m, "h")
	assert.Equal(t, f.gui.Home(), m.Scope().CurrentScreen())
	assert.Empty(t, m.Scope().Navigation().BackStack())
}

func TestUnknownKeyShowsStatus(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)
	before := m.Scope().CurrentScreen()

	m.Update(NavigateMsg{Key: "Pgae One"})

	assert.Equal(t, before, m.Scope().CurrentScreen())
	assert.Contains(t, m.Status(), "Screen [Pgae One] not found")
	assert.Contains(t, m.Status(), "did you mean Page One")
	assert.Contains(t, m.View(), "not found")

	m.Update(NavigateMsg{Key: "Page Two"})
	assert.Empty(t, m.Status(), "navigation clears the status")
}

func TestAlertConfirm(t *testing.T) {
	f := newFixture()
	m := newModel(t, f, scriptgui.WithStartScreen("Page Two"))

	press(m, "d")
	view := m.View()
	assert.Contains(t, view, "Delete build?")
	assert.Contains(t, view, "Confirm")
	assert.Contains(t, view, "Cancel")

	press(m, "y")
	assert.Equal(t, 1, f.confirmed)
	assert.Equal(t, scriptgui.AlertResultConfirmed, m.Scope().LastAlertResult())
	assert.NotContains(t, m.View(), "Delete build?")
}

func TestAlertCancelDoesNotNavigate(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)
	m.Update(NavigateMsg{Key: "Page One Settings"})
	m.Scope().DispatchAlert(scriptgui.Alert{Title: "Sure?", OnCancel: func() { f.cancelled++ }})

	press(m, "s", "esc")
	assert.Equal(t, 1, f.cancelled)
	assert.Equal(t, f.settings, m.Scope().CurrentScreen(), "esc answered the alert instead of going back")
	assert.Equal(t, scriptgui.AlertResultCancelled, m.Scope().LastAlertResult())
}

func TestSnackbarAction(t *testing.T) {
	f := newFixture()
	m := newModel(t, f, scriptgui.WithStartScreen("Page Two"))

	_, cmd := m.Update(key("b"))
	assert.NotNil(t, cmd, "expiry tick is scheduled")
	assert.Contains(t, m.View(), "Build queued")
	assert.Contains(t, m.View(), "Undo")

	press(m, "a")
	assert.Equal(t, []scriptgui.SnackbarResult{scriptgui.SnackbarActionPerformed}, f.snackbars)
	assert.NotContains(t, m.View(), "Build queued")
}

func TestSnackbarExpiry(t *testing.T) {
	f := newFixture()
	m := newModel(t, f, scriptgui.WithStartScreen("Page Two"))

	press(m, "b", "b")
	first, ok := m.Scope().Snackbar()
	require.True(t, ok)
	assert.Equal(t, first.ID(), m.snackbarTimed)

	m.Update(snackbarExpiredMsg{id: first.ID() + 1})
	assert.Empty(t, f.snackbars, "ticks for other snackbars are ignored")

	m.Update(snackbarExpiredMsg{id: first.ID()})
	assert.Equal(t, []scriptgui.SnackbarResult{scriptgui.SnackbarDismissed}, f.snackbars)

	second, ok := m.Scope().Snackbar()
	require.True(t, ok, "the queued snackbar is shown next")
	assert.Equal(t, second.ID(), m.snackbarTimed, "and gets its own timer")

	m.Update(snackbarExpiredMsg{id: first.ID()})
	assert.Len(t, f.snackbars, 1, "the first timer cannot end the second snackbar")

	m.Update(snackbarExpiredMsg{id: second.ID()})
	assert.Len(t, f.snackbars, 2)
	_, ok = m.Scope().Snackbar()
	assert.False(t, ok)
}

func TestScriptDismissedSnackbarTimerIsIgnored(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	m.Scope().DispatchSnackbar(scriptgui.Snackbar{Message: "first"})
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.NotNil(t, cmd)
	first, _ := m.Scope().Snackbar()

	// Dismissed by the script, not by the model.
	m.Scope().DismissSnackbar(scriptgui.SnackbarDismissed)
	m.Scope().DispatchSnackbar(scriptgui.Snackbar{Message: "second", Duration: scriptgui.SnackbarIndefinite})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(snackbarExpiredMsg{id: first.ID()})

	current, ok := m.Scope().Snackbar()
	require.True(t, ok, "the indefinite snackbar stays up")
	assert.Equal(t, "second", current.Message)
}

func TestIndefiniteSnackbarSchedulesNoTick(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	m.Scope().DispatchSnackbar(scriptgui.Snackbar{Message: "Waiting", Duration: scriptgui.SnackbarIndefinite})
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	current, _ := m.Scope().Snackbar()
	assert.Equal(t, current.ID(), m.snackbarTimed)
}

func TestPalette(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	press(m, "/")
	require.NotNil(t, m.palette)
	assert.Contains(t, m.View(), "Go to")

	press(m, "p", "a", "g", "e", " ", "t")
	require.NotEmpty(t, m.palette.matches)
	assert.Equal(t, f.pageTwo, m.palette.matches[0].Item)

	press(m, "enter")
	assert.Nil(t, m.palette)
	assert.Equal(t, f.pageTwo, m.Scope().CurrentScreen())
}

func TestPaletteTypingDoesNotTriggerBindings(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	press(m, ":", "q", "h")
	assert.Equal(t, scriptgui.GuiStateRunning, m.Scope().State())
	assert.Equal(t, "qh", m.palette.query)

	press(m, "backspace", "esc")
	assert.Nil(t, m.palette)
	assert.Equal(t, f.gui.Home(), m.Scope().CurrentScreen())
}

func TestPaletteShowsNestedKeys(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	press(m, "/", "s", "e", "t")
	texts := make([]string, len(m.palette.matches))
	for i, match := range m.palette.matches {
		texts[i] = match.Text
	}
	assert.Equal(t, "Settings", texts[0], "the closer prefix match ranks first")
	assert.Contains(t, texts, "Settings (Page One Settings)")

	press(m, "down", "enter")
	assert.Equal(t, f.settings, m.Scope().CurrentScreen())
}

func TestQuitCancels(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	_, cmd := m.Update(key("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, scriptgui.GuiStateCancelled, m.Scope().State())
	assert.True(t, scriptgui.IsCancelled(m.Scope().Result().Err))
}

func TestButtonCanCompleteGui(t *testing.T) {
	f := newFixture()
	m := newModel(t, f, scriptgui.WithStartScreen("Page Two"))

	_, cmd := m.Update(key("c"))
	assert.NotNil(t, cmd)
	assert.Equal(t, scriptgui.GuiStateCompleted, m.Scope().State())
	assert.NoError(t, m.Scope().Result().Err)
}

func TestStopMsg(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	m.Update(StopMsg{})
	assert.Equal(t, scriptgui.GuiStateCancelled, m.Scope().State())
}

func TestNavigateBackMsg(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	m.Update(NavigateToMsg{Screen: f.pageOne})
	m.Update(NavigateMsg{Key: "Page One Settings"})
	m.Update(NavigateBackMsg{})
	assert.Equal(t, f.pageOne, m.Scope().CurrentScreen())
}

func TestThemeMsg(t *testing.T) {
	prev := theme.Current()
	t.Cleanup(func() { theme.Apply(prev) })

	f := newFixture()
	m := newModel(t, f)

	m.Update(ThemeMsg{Theme: theme.Light()})
	assert.Equal(t, theme.Light(), theme.Current())
}

func TestCloseStopsObserving(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)
	m.status = "stale"

	m.Close()
	require.NoError(t, m.Scope().NavigateTo("Page One"))
	assert.Equal(t, "stale", m.Status())
}

func TestKeyNotFoundStatusWithoutSuggestions(t *testing.T) {
	f := newFixture()
	m := newModel(t, f)

	err := m.Scope().NavigateTo("zzzzzzzzzzzz")
	require.ErrorIs(t, err, nav.ErrKeyNotFound)

	m.Update(NavigateMsg{Key: "zzzzzzzzzzzz"})
	assert.Equal(t, "Screen [zzzzzzzzzzzz] not found", m.Status())
}

func TestPinnedLeftFrameOnFirstView(t *testing.T) {
	b := scriptgui.New("Pinned", "")
	b.Screen("Tools", constants.IconBuild, func(s *scriptgui.ScreenBuilder) {
		s.PinLeftFrame()
		s.Left(func(scriptgui.FrameContext) string { return "tool list" },
			scriptgui.Button{Label: "Run Tool", Key: "r"})
		s.Main(func(scriptgui.FrameContext) string { return "tools body" })
	})
	scope, err := scriptgui.NewScope(b.Build())
	require.NoError(t, err)
	m := New(scope, Options{})
	t.Cleanup(m.Close)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	m.Update(NavigateMsg{Key: "Tools"})

	view := m.View()
	assert.Contains(t, view, "tool list")
	assert.Contains(t, view, "Run Tool")
	assert.Equal(t, view, m.View(), "rendering does not change what is shown")
}
