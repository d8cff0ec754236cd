package scriptgui

import (
	"errors"
	"fmt"

	"github.com/highorder/scriptgui/pkg/scriptgui/nav"
)

var (
	// ErrCancelled is the Result error of a GUI the user closed or the
	// script stopped before it completed. It is not a failure.
	ErrCancelled = errors.New("gui cancelled by user")

	// ErrNoScreens is returned by NewScope for a Gui with no screens.
	ErrNoScreens = errors.New("gui has no screens")
)

// Operation names the framework step an InfrastructureError comes from.
type Operation string

const (
	OpOpenScope  Operation = "open_scope"  // building the Scope of a Gui
	OpRunProgram Operation = "run_program" // the terminal program crashed
	OpLoadConfig Operation = "load_config" // reading or validating the settings file
	OpKeymap     Operation = "keymap"      // applying key overrides
	OpSetLocale  Operation = "set_locale"  // switching the chrome language
)

// InfrastructureError is a failure of scriptgui itself rather than of the
// script's own work: the terminal went away, the settings file is broken,
// the GUI could not be opened. Scripts usually report it and exit.
type InfrastructureError struct {
	Op  Operation
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err == nil {
		return "scriptgui: " + string(e.Op)
	}
	return fmt.Sprintf("scriptgui: %s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op Operation, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// FailedOperation returns the operation of the first InfrastructureError in
// err's chain.
func FailedOperation(err error) (Operation, bool) {
	var infraErr *InfrastructureError
	if errors.As(err, &infraErr) {
		return infraErr.Op, true
	}
	return "", false
}

func IsInfrastructureError(err error) bool {
	_, ok := FailedOperation(err)
	return ok
}

// IsCancelled reports whether err ends a GUI that was closed, not one that failed.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsKeyNotFound reports whether err comes from navigating to an unknown
// screen key. See NavigateTo.
func IsKeyNotFound(err error) bool {
	return nav.IsKeyNotFound(err)
}
