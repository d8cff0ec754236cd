package main

import (
	"log/slog"
	"strings"

	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
)

// myScriptGui builds the example control panel: two sections, side frames,
// a nested settings page, and an alert and snackbar demo.
func myScriptGui(title string, logger *slog.Logger) *scriptgui.Gui {
	gui := scriptgui.New(title, constants.IconLogo)

	gui.Screen("Page One", constants.IconOne, func(s *scriptgui.ScreenBuilder) {
		s.OnGuiClosed(func() {
			logger.Debug("Gui closed", "screen", "Page One")
		})

		s.FloatingAction(scriptgui.Button{
			Label: "Click Me!",
			OnPress: func(*scriptgui.Scope) {
				logger.Debug("Clicked floating action button")
			},
		})

		s.Main(centered("Page One"),
			scriptgui.Button{Label: "Toggle Left Frame", Key: "1", OnPress: (*scriptgui.Scope).ToggleLeftFrame},
			scriptgui.Button{Label: "Toggle Right Frame", Key: "2", OnPress: (*scriptgui.Scope).ToggleRightFrame},
		)

		s.Left(nil,
			scriptgui.Button{Label: "Close Left Frame", Key: "3", OnPress: (*scriptgui.Scope).ToggleLeftFrame},
		)

		s.Right(nil,
			scriptgui.Button{Label: "Close Right Frame", Key: "4", OnPress: (*scriptgui.Scope).ToggleRightFrame},
			scriptgui.Button{Label: "Go to Page One Settings", Key: "5", OnPress: func(scope *scriptgui.Scope) {
				_ = scope.NavigateTo("Page One Settings")
			}},
		)

		s.Screen("Settings", "Page One Settings", func(s *scriptgui.ScreenBuilder) {
			s.Main(centered("Page One Settings"))
		})
	})

	gui.Screen("Page Two", constants.IconTwo, func(s *scriptgui.ScreenBuilder) {
		s.Left(centered("Left Frame Stays Open"),
			scriptgui.Button{Label: "Show Snackbar", Key: "s", OnPress: func(scope *scriptgui.Scope) {
				scope.DispatchSnackbar(scriptgui.Snackbar{
					Message:  "This is a snackbar!",
					Action:   "Click Me!",
					Duration: constants.SnackbarLong,
					OnResult: func(result scriptgui.SnackbarResult) {
						logger.Info("Snackbar result", "result", result.String())
					},
				})
			}},
			scriptgui.Button{Label: "Show Alert", Key: "t", OnPress: func(scope *scriptgui.Scope) {
				scope.DispatchAlert(scriptgui.Alert{
					Title:       "Script Alert!",
					Message:     "You are testing the alert!",
					ConfirmText: "Ok",
					CancelText:  "Close",
					OnConfirm:   func() { logger.Debug("Alert confirmed") },
					OnCancel:    func() { logger.Debug("Alert cancelled") },
				})
			}},
		)

		s.PinLeftFrame()
		s.Main(centered("Page Two"))
	})

	return gui.Build()
}

func centered(text string) scriptgui.RenderFunc {
	return func(ctx scriptgui.FrameContext) string {
		pad := max((ctx.Width-len(text))/2, 0)
		return strings.Repeat(" ", pad) + text
	}
}
