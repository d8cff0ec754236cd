package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/config"
	"github.com/highorder/scriptgui/pkg/scriptgui/input"
	"github.com/highorder/scriptgui/pkg/scriptgui/theme"
)

// Run opens gui in the terminal and blocks until it completes, is cancelled
// or ctx is done. The scope is closed before Run returns, so every screen's
// OnGuiClosed hook has run.
//
// The returned error is the failure of a GuiStateFailed GUI or an
// *scriptgui.InfrastructureError; a cancelled GUI returns no error.
func Run(ctx context.Context, gui *scriptgui.Gui, opts Options) (scriptgui.GuiState, error) {
	scope, err := scriptgui.NewScope(gui, scriptgui.WithStartScreen(opts.StartScreen))
	if err != nil {
		return scriptgui.GuiStateFailed, scriptgui.NewInfrastructureError(scriptgui.OpOpenScope, err)
	}
	defer scope.Close()

	model := New(scope, opts)
	defer model.Close()

	program := tea.NewProgram(model, opts.programOptions()...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		program.Send(StopMsg{})
	}()

	if opts.Device != nil {
		go func() {
			err := opts.Device.Run(ctx, func(ev input.ButtonEvent) {
				program.Send(ButtonMsg(ev))
			})
			if err != nil {
				scope.Logger().Error("Input device stopped", "device", opts.Device.Name(), "error", err)
			}
		}()
	}

	if opts.ConfigPath != "" {
		go func() {
			err := config.Watch(ctx, opts.ConfigPath, func(cfg config.Config) {
				program.Send(ThemeMsg{Theme: theme.FromConfig(cfg.Theme)})
			})
			if err != nil {
				scope.Logger().Warn("Config watch stopped", "path", opts.ConfigPath, "error", err)
			}
		}()
	}

	scope.Logger().Info("Starting terminal GUI", "title", gui.Title)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		scope.Fail(err)
		return scriptgui.GuiStateFailed, scriptgui.NewInfrastructureError(scriptgui.OpRunProgram, err)
	}

	// A killed program ends without the GUI having stopped.
	scope.Cancel()

	result := scope.Result()
	if result.State == scriptgui.GuiStateFailed {
		return result.State, result.Err
	}
	return result.State, nil
}
