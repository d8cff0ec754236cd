package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMyScriptGuiScreens(t *testing.T) {
	gui := myScriptGui("My Script", discardLogger())

	scope, err := scriptgui.NewScope(gui)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Home", "Page One", "Page One Settings", "Page Two", "Settings"},
		scope.Navigation().Keys())

	titles := make([]string, 0, len(gui.Screens()))
	for _, s := range gui.Screens() {
		titles = append(titles, s.Title())
	}
	assert.Equal(t, []string{"Home", "Page One", "Page Two", "Settings"}, titles,
		"nested screens are not listed in the drawer")
}

func TestPageOneSettingsFlow(t *testing.T) {
	scope, err := scriptgui.NewScope(myScriptGui("My Script", discardLogger()), scriptgui.WithStartScreen("Page One"))
	require.NoError(t, err)

	pageOne := scope.CurrentScreen()
	pressButton(t, scope, "Toggle Right Frame")
	require.True(t, pageOne.IsRightFrameVisible())

	pressButton(t, scope, "Go to Page One Settings")
	assert.Equal(t, "Page One Settings", scope.CurrentScreen().NavigationKey())
	assert.Equal(t, []*scriptgui.Screen{pageOne}, scope.Navigation().BackStack())

	assert.True(t, scope.Back())
	assert.Equal(t, pageOne, scope.CurrentScreen())
}

func TestPageTwoKeepsLeftFrameOpen(t *testing.T) {
	scope, err := scriptgui.NewScope(myScriptGui("My Script", discardLogger()), scriptgui.WithStartScreen("Page Two"))
	require.NoError(t, err)

	screen := scope.CurrentScreen()
	assert.True(t, screen.IsLeftFrameVisible(), "visible before anything renders")
	screen.HideLeftFrame()
	scope.ToggleLeftFrame()
	assert.True(t, screen.IsLeftFrameVisible())

	body := screen.MainFrame().Body(scriptgui.FrameContext{Scope: scope, Screen: screen, Width: 8})
	assert.Equal(t, "Page Two", body)

	pressButton(t, scope, "Show Alert")
	alert, ok := scope.Alert()
	require.True(t, ok)
	assert.Equal(t, "Ok", alert.ConfirmText)
	assert.Equal(t, "Close", alert.CancelText)

	pressButton(t, scope, "Show Snackbar")
	snackbar, ok := scope.Snackbar()
	require.True(t, ok)
	assert.Equal(t, "Click Me!", snackbar.Action)
}

func TestCLISettingsOverrideConfig(t *testing.T) {
	cli := CLI{Config: t.TempDir() + "/absent.toml", LogLevel: "debug", Start: "Page Two", Locale: "de"}
	cfg, err := cli.settings()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Page Two", cfg.StartScreen)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, config.Default().Title, cfg.Title)
}

func TestCLISettingsRejectsBadLevel(t *testing.T) {
	cli := CLI{Config: t.TempDir() + "/absent.toml", LogLevel: "loud"}
	_, err := cli.settings()
	assert.Error(t, err)
}

func TestCLIFlags(t *testing.T) {
	t.Setenv("SCRIPTGUI_CONFIG", filepath.Join(t.TempDir(), "from-env.toml"))

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("myscript"))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--print-config", "--no-alt-screen", "-s", "Page Two"})
	require.NoError(t, err)

	assert.True(t, cli.PrintConfig)
	assert.True(t, cli.NoAlt)
	assert.Equal(t, "Page Two", cli.Start)
	assert.Equal(t, "from-env.toml", filepath.Base(cli.Config))
}

func TestPrintedConfigLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myscript.toml")
	require.NoError(t, os.WriteFile(path, []byte(config.DefaultTOML()), 0o644))

	cli := CLI{Config: path}
	cfg, err := cli.settings()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestConfiguredLogPathUsedAfterLoadingMissingConfig(t *testing.T) {
	dir := t.TempDir()
	cli := CLI{Config: filepath.Join(dir, "absent.toml"), LogLevel: "debug"}
	cfg, err := cli.settings()
	require.NoError(t, err)

	logPath := filepath.Join(dir, "logs", "gui.log")
	require.NoError(t, scriptgui.Init(scriptgui.Options{LogPath: logPath, LogLevel: cfg.LogLevel}))
	t.Cleanup(scriptgui.Close)

	scriptgui.GetLogger().Info("results logged")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "results logged")
}

func pressButton(t *testing.T, scope *scriptgui.Scope, label string) {
	t.Helper()
	for _, b := range scope.CurrentScreen().Buttons() {
		if b.Label == label {
			b.OnPress(scope)
			return
		}
	}
	t.Fatalf("button %q not on screen %q", label, scope.CurrentScreen().Title())
}
