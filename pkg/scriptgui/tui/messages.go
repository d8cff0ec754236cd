package tui

import (
	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/theme"
)

// Messages other goroutines send with tea.Program.Send. They are applied on
// the UI goroutine, which owns the navigation controller.
type (
	// NavigateMsg navigates by key.
	NavigateMsg struct {
		Key string
	}

	// NavigateToMsg navigates to a screen value.
	NavigateToMsg struct {
		Screen *scriptgui.Screen
	}

	// NavigateBackMsg pops the back-stack.
	NavigateBackMsg struct{}

	// ButtonMsg is a virtual button event from a hardware device.
	ButtonMsg struct {
		Button  constants.VirtualButton
		Pressed bool
		Repeat  bool
	}

	// ThemeMsg swaps the active theme, e.g. after a config reload.
	ThemeMsg struct {
		Theme theme.Theme
	}

	// StopMsg ends the program. The GUI is cancelled if still running.
	StopMsg struct{}

	// snackbarExpiredMsg ends the snackbar with the given ID, if it is
	// still the one showing.
	snackbarExpiredMsg struct {
		id uint64
	}
)
