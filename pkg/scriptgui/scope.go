package scriptgui

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
	"github.com/highorder/scriptgui/pkg/scriptgui/nav"
)

// Scope is the state of one open GUI window. It is passed explicitly to
// every frame render and button handler.
//
// Apart from the lifecycle methods (State, Result, Done, Complete, Cancel,
// Fail), a Scope must only be used from the UI goroutine.
type Scope struct {
	id     string
	gui    *Gui
	nav    *nav.Controller[*Screen]
	logger *slog.Logger

	state   *atomic.Int32
	failure *atomic.Error
	done    chan struct{}

	alert           *Alert
	lastAlertResult AlertResult

	snackbars          []Snackbar
	lastSnackbarID     uint64
	lastSnackbarResult SnackbarResult

	loadOnce  sync.Once
	closeOnce sync.Once
	stopOnce  sync.Once
}

// ScopeOption configures NewScope.
type ScopeOption func(*scopeOptions)

type scopeOptions struct {
	startKey string
	logger   *slog.Logger
}

// WithStartScreen opens the GUI on the screen with the given key instead of Home.
func WithStartScreen(key string) ScopeOption {
	return func(o *scopeOptions) {
		o.startKey = key
	}
}

// WithScopeLogger replaces the internal framework logger for this scope.
func WithScopeLogger(logger *slog.Logger) ScopeOption {
	return func(o *scopeOptions) {
		o.logger = logger
	}
}

// NewScope opens a scope on gui. An unknown start key falls back to Home
// with a warning so the window stays usable.
func NewScope(gui *Gui, opts ...ScopeOption) (*Scope, error) {
	if gui == nil || len(gui.screens) == 0 {
		return nil, ErrNoScreens
	}

	o := scopeOptions{logger: internal.GetInternalLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	logger := o.logger.With("session", id)

	controller, err := nav.New(gui.home, gui.screens, nav.WithLogger[*Screen](logger))
	if err != nil {
		return nil, fmt.Errorf("scriptgui: building screen registry: %w", err)
	}

	if o.startKey != "" && o.startKey != gui.home.NavigationKey() {
		if start, ok := controller.Lookup(o.startKey); ok {
			controller.Navigate(start)
		} else {
			logger.Warn("Start screen not found, opening Home instead",
				"key", o.startKey,
				"valid_keys", controller.Keys())
		}
	}

	return &Scope{
		id:      id,
		gui:     gui,
		nav:     controller,
		logger:  logger,
		state:   atomic.NewInt32(int32(GuiStateRunning)),
		failure: atomic.NewError(nil),
		done:    make(chan struct{}),
	}, nil
}

// ID is the unique session identifier of this window, used to correlate logs.
func (s *Scope) ID() string { return s.id }

func (s *Scope) Gui() *Gui { return s.gui }

// Navigation exposes the controller for renderers and advanced scripts.
func (s *Scope) Navigation() *nav.Controller[*Screen] { return s.nav }

func (s *Scope) Logger() *slog.Logger { return s.logger }

// CurrentScreen returns the screen on display.
func (s *Scope) CurrentScreen() *Screen { return s.nav.Current() }

// NavigateTo navigates by key. Unknown keys leave the state unchanged and
// return a *nav.KeyNotFoundError.
func (s *Scope) NavigateTo(key string) error {
	return s.nav.NavigateByKey(key)
}

func (s *Scope) Navigate(screen *Screen) {
	s.nav.Navigate(screen)
}

// Back returns to the previous detail screen, if any.
func (s *Scope) Back() bool {
	return s.nav.NavigateBack()
}

func (s *Scope) ToggleLeftFrame() {
	s.CurrentScreen().ToggleLeftFrame()
}

func (s *Scope) ToggleRightFrame() {
	s.CurrentScreen().ToggleRightFrame()
}

// Open runs the GUI's OnLoad hook. Only the first call has an effect.
func (s *Scope) Open() {
	s.loadOnce.Do(func() {
		s.logger.Info("GUI opened", "title", s.gui.Title, "screens", s.nav.Keys())
		if s.gui.onLoad != nil {
			s.gui.onLoad(s)
		}
	})
}

// DispatchAlert shows an alert, replacing any alert already showing.
func (s *Scope) DispatchAlert(alert Alert) {
	a := alert.withDefaults()
	s.alert = &a
}

// Alert returns the alert currently showing.
func (s *Scope) Alert() (Alert, bool) {
	if s.alert == nil {
		return Alert{}, false
	}
	return *s.alert, true
}

func (s *Scope) ConfirmAlert() {
	s.answerAlert(AlertResultConfirmed)
}

func (s *Scope) CancelAlert() {
	s.answerAlert(AlertResultCancelled)
}

func (s *Scope) answerAlert(result AlertResult) {
	if s.alert == nil {
		return
	}
	alert := *s.alert
	s.alert = nil
	s.lastAlertResult = result

	switch result {
	case AlertResultConfirmed:
		if alert.OnConfirm != nil {
			alert.OnConfirm()
		}
	case AlertResultCancelled:
		if alert.OnCancel != nil {
			alert.OnCancel()
		}
	}
}

// LastAlertResult reports how the most recent alert was answered.
func (s *Scope) LastAlertResult() AlertResult { return s.lastAlertResult }

// DispatchSnackbar queues a snackbar. Snackbars are shown one at a time in
// the order they were dispatched.
func (s *Scope) DispatchSnackbar(snackbar Snackbar) {
	s.lastSnackbarID++
	snackbar = snackbar.withDefaults()
	snackbar.id = s.lastSnackbarID
	s.snackbars = append(s.snackbars, snackbar)
}

// Snackbar returns the snackbar currently showing.
func (s *Scope) Snackbar() (Snackbar, bool) {
	if len(s.snackbars) == 0 {
		return Snackbar{}, false
	}
	return s.snackbars[0], true
}

// DismissSnackbar removes the showing snackbar and reports result to its callback.
func (s *Scope) DismissSnackbar(result SnackbarResult) {
	if len(s.snackbars) == 0 {
		return
	}
	current := s.snackbars[0]
	s.snackbars = s.snackbars[1:]
	s.lastSnackbarResult = result
	s.logger.Debug("Snackbar dismissed", "message", current.Message, "result", result.String())
	if current.OnResult != nil {
		current.OnResult(result)
	}
}

func (s *Scope) LastSnackbarResult() SnackbarResult { return s.lastSnackbarResult }

// stateStopping is held while stop records the failure, so readers never
// see GuiStateFailed without its error.
const stateStopping int32 = -1

// State returns the lifecycle state. Safe for concurrent use.
func (s *Scope) State() GuiState {
	state := s.state.Load()
	if state == stateStopping {
		return GuiStateRunning
	}
	return GuiState(state)
}

// Done is closed once the GUI leaves the running state. Safe for concurrent use.
func (s *Scope) Done() <-chan struct{} {
	return s.done
}

// Complete marks the GUI as finished successfully.
// Only the first of Complete, Cancel and Fail takes effect.
func (s *Scope) Complete() bool {
	return s.stop(GuiStateCompleted, nil)
}

// Cancel marks the GUI as cancelled. Safe for concurrent use, e.g. from a signal handler.
func (s *Scope) Cancel() bool {
	return s.stop(GuiStateCancelled, nil)
}

// Fail stops the GUI with an error.
func (s *Scope) Fail(err error) bool {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return s.stop(GuiStateFailed, err)
}

func (s *Scope) stop(state GuiState, err error) bool {
	if !s.state.CompareAndSwap(int32(GuiStateRunning), stateStopping) {
		return false
	}
	if err != nil {
		s.failure.Store(err)
	}
	s.state.Store(int32(state))
	s.stopOnce.Do(func() { close(s.done) })
	s.logger.Info("GUI stopped", "state", state.String())
	return true
}

// Result returns the final state and, for a failed or cancelled GUI, its error.
func (s *Scope) Result() Result {
	state := s.State()
	switch state {
	case GuiStateFailed:
		return Result{State: state, Err: s.failure.Load()}
	case GuiStateCancelled:
		return Result{State: state, Err: ErrCancelled}
	default:
		return Result{State: state}
	}
}

// Close runs every screen's OnGuiClosed hook, nested screens included, then
// the GUI's OnClose hook. A GUI still running is marked cancelled.
// Only the first call has an effect.
func (s *Scope) Close() {
	s.closeOnce.Do(func() {
		s.Cancel()
		for _, screen := range s.nav.Screens() {
			screen.closed()
		}
		if s.gui.onClose != nil {
			s.gui.onClose()
		}
		s.logger.Info("GUI closed", "state", s.State().String())
	})
}
