package nav

import (
	"log/slog"

	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
	"github.com/highorder/scriptgui/pkg/scriptgui/search"
)

// EventKind tells observers which operation produced an Event.
type EventKind int

const (
	EventNavigate EventKind = iota // Navigate or NavigateByKey completed
	EventBack                      // NavigateBack popped a screen
)

func (k EventKind) String() string {
	switch k {
	case EventNavigate:
		return "navigate"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}

// Event is published to observers after every state change.
type Event[S any] struct {
	Kind      EventKind
	From      S
	To        S
	BackStack []S // copy, oldest first
}

// Observer receives navigation events on the goroutine that mutated the controller.
type Observer[S any] func(Event[S])

// Option configures a Controller.
type Option[S Node[S]] func(*Controller[S])

// WithLogger replaces the internal framework logger.
func WithLogger[S Node[S]](logger *slog.Logger) Option[S] {
	return func(c *Controller[S]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver subscribes fn before the controller is returned.
func WithObserver[S Node[S]](fn Observer[S]) Option[S] {
	return func(c *Controller[S]) {
		c.Subscribe(fn)
	}
}

type subscription[S any] struct {
	id int
	fn Observer[S]
}

// Controller keeps track of the displayed screen and the back-stack of
// detail screens leading to it.
//
// Controller performs no synchronization. All calls must come from the
// goroutine that owns the UI; other goroutines should post requests to it.
type Controller[S Node[S]] struct {
	registry  *Registry[S]
	current   S
	backStack *Stack[S]

	observers []subscription[S]
	nextID    int

	logger *slog.Logger
}

// New creates a controller showing start, with every screen reachable from
// roots available to NavigateByKey.
func New[S Node[S]](start S, roots []S, opts ...Option[S]) (*Controller[S], error) {
	registry, err := NewRegistry(roots)
	if err != nil {
		return nil, err
	}

	c := &Controller[S]{
		registry:  registry,
		current:   start,
		backStack: NewStack[S](),
		logger:    internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Current returns the screen presently displayed.
func (c *Controller[S]) Current() S {
	return c.current
}

// BackStack returns a copy of the back-stack, oldest first.
func (c *Controller[S]) BackStack() []S {
	return c.backStack.Entries()
}

// CanGoBack reports whether NavigateBack would change the current screen.
func (c *Controller[S]) CanGoBack() bool {
	return !c.backStack.IsEmpty()
}

// Trail returns the back-stack followed by the current screen.
// Renderers use it for breadcrumbs.
func (c *Controller[S]) Trail() []S {
	return append(c.backStack.Entries(), c.current)
}

// Lookup returns the registered screen for key.
func (c *Controller[S]) Lookup(key string) (S, bool) {
	return c.registry.Lookup(key)
}

// Keys returns every registered navigation key, sorted.
func (c *Controller[S]) Keys() []string {
	return c.registry.Keys()
}

// Screens returns every registered screen in discovery order.
func (c *Controller[S]) Screens() []S {
	return c.registry.Screens()
}

// NavigateByKey navigates to the registered screen with the given key.
// An unknown key is logged and returned as a *KeyNotFoundError; the state
// is left as it was.
func (c *Controller[S]) NavigateByKey(key string) error {
	screen, ok := c.registry.Lookup(key)
	if !ok {
		valid := c.registry.Keys()
		err := &KeyNotFoundError{
			Key:         key,
			ValidKeys:   valid,
			Suggestions: search.Closest(key, valid, 3),
		}
		c.logger.Warn("Screen key not found, could not navigate to it",
			"key", key,
			"valid_keys", valid,
			"suggestions", err.Suggestions)
		return err
	}
	c.Navigate(screen)
	return nil
}

// Navigate makes screen the current screen.
//
// A primary screen clears the back-stack. For a detail screen the previous
// screen is pushed, unless the target is already on the stack, in which case
// the stack is cut back to just before the target's first occurrence.
// Navigating to the current detail screen leaves the stack alone.
func (c *Controller[S]) Navigate(screen S) {
	var zero S
	if screen == zero {
		c.logger.Warn("Ignoring navigation to a nil screen")
		return
	}
	previous := c.current

	if screen.IsPrimary() {
		c.backStack.Clear()
	} else if previous != screen {
		if index := c.backStack.IndexOf(screen); index >= 0 {
			c.backStack.TruncateAt(index)
		} else {
			c.backStack.Push(previous)
		}
	}
	c.current = screen

	c.logger.Debug("Navigated",
		"from", titleOf(previous),
		"to", screen.Title(),
		"back_stack", titles(c.backStack.Entries()))
	c.publish(EventNavigate, previous)
}

// NavigateBack pops the most recent screen off the back-stack and shows it.
// The screen being left is discarded. Returns false if the stack was empty.
func (c *Controller[S]) NavigateBack() bool {
	screen, ok := c.backStack.Pop()
	if !ok {
		return false
	}
	previous := c.current
	c.current = screen

	c.logger.Debug("Navigated back",
		"from", titleOf(previous),
		"to", screen.Title(),
		"back_stack", titles(c.backStack.Entries()))
	c.publish(EventBack, previous)
	return true
}

// Subscribe registers fn for every subsequent event.
// The returned function removes the subscription.
func (c *Controller[S]) Subscribe(fn Observer[S]) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, subscription[S]{id: id, fn: fn})

	return func() {
		for i, sub := range c.observers {
			if sub.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller[S]) publish(kind EventKind, from S) {
	if len(c.observers) == 0 {
		return
	}
	event := Event[S]{
		Kind:      kind,
		From:      from,
		To:        c.current,
		BackStack: c.backStack.Entries(),
	}
	// Observers may unsubscribe while being notified.
	observers := make([]subscription[S], len(c.observers))
	copy(observers, c.observers)
	for _, sub := range observers {
		sub.fn(event)
	}
}

func titleOf[S Node[S]](screen S) string {
	var zero S
	if screen == zero {
		return ""
	}
	return screen.Title()
}

func titles[S Node[S]](screens []S) []string {
	out := make([]string, len(screens))
	for i, screen := range screens {
		out[i] = titleOf(screen)
	}
	return out
}
