package scriptgui

import (
	"time"

	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
)

// Alert is a modal confirm/cancel dialog.
type Alert struct {
	Title       string
	Message     string
	ConfirmText string // defaults to the localized "Confirm"
	CancelText  string // defaults to the localized "Cancel"
	OnConfirm   func()
	OnCancel    func()
}

func (a Alert) withDefaults() Alert {
	if a.ConfirmText == "" {
		a.ConfirmText = internal.T("alert.confirm")
	}
	if a.CancelText == "" {
		a.CancelText = internal.T("alert.cancel")
	}
	return a
}

// SnackbarIndefinite keeps a snackbar up until it is dismissed or its action is pressed.
const SnackbarIndefinite time.Duration = -1

// Snackbar is a short message shown at the bottom of the window,
// optionally with one action.
type Snackbar struct {
	Message  string
	Action   string        // empty for no action
	Duration time.Duration // zero means constants.SnackbarShort
	OnResult func(SnackbarResult)

	id uint64
}

// ID identifies a dispatched snackbar within its Scope. It is zero until
// the snackbar is dispatched.
func (s Snackbar) ID() uint64 {
	return s.id
}

func (s Snackbar) withDefaults() Snackbar {
	if s.Duration == 0 {
		s.Duration = constants.SnackbarShort
	}
	return s
}

// Expires reports whether the snackbar goes away on its own.
func (s Snackbar) Expires() bool {
	return s.Duration > 0
}
