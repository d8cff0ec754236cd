package scriptgui

// GuiState is the lifecycle state of an open GUI.
type GuiState int32

const (
	GuiStateRunning   GuiState = iota // Window is open
	GuiStateCompleted                 // Script marked the GUI as done
	GuiStateCancelled                 // User closed the window or the script was stopped
	GuiStateFailed                    // GUI stopped on an error
)

func (s GuiState) String() string {
	switch s {
	case GuiStateRunning:
		return "running"
	case GuiStateCompleted:
		return "completed"
	case GuiStateCancelled:
		return "cancelled"
	case GuiStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the GUI has stopped running.
func (s GuiState) IsTerminal() bool {
	return s != GuiStateRunning
}

// Result is what a script gets back once its GUI closes.
type Result struct {
	State GuiState
	Err   error // set for GuiStateFailed, ErrCancelled for GuiStateCancelled
}

// AlertResult records how the last alert was dismissed.
type AlertResult int

const (
	AlertResultNone      AlertResult = iota // No alert answered yet
	AlertResultConfirmed                    // Confirm button
	AlertResultCancelled                    // Cancel button or dismissal
)

// SnackbarResult records how a snackbar went away.
type SnackbarResult int

const (
	SnackbarDismissed       SnackbarResult = iota // Timed out or dismissed
	SnackbarActionPerformed                       // The action button was pressed
)

func (r SnackbarResult) String() string {
	if r == SnackbarActionPerformed {
		return "action_performed"
	}
	return "dismissed"
}
