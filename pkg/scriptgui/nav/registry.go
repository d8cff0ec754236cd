package nav

import (
	"fmt"
	"sort"
)

// Node is the constraint a screen type must satisfy to be navigated.
// Screens are compared with ==, so pointer types give identity semantics.
type Node[S any] interface {
	comparable
	NavigationKey() string
	Title() string
	IsPrimary() bool
	Children() []S
}

// Registry is the flattened set of every screen reachable from a set of roots,
// indexed by navigation key.
type Registry[S Node[S]] struct {
	byKey map[string]S
	order []S
}

// NewRegistry walks roots and all their descendants depth first.
// A screen reached through more than one parent is registered once.
// Two distinct screens sharing a key fail with ErrDuplicateKey.
func NewRegistry[S Node[S]](roots []S) (*Registry[S], error) {
	r := &Registry[S]{
		byKey: make(map[string]S),
	}
	visited := make(map[S]struct{})
	for _, root := range roots {
		if err := r.add(root, visited); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry[S]) add(screen S, visited map[S]struct{}) error {
	var zero S
	if screen == zero {
		return nil
	}
	if _, seen := visited[screen]; seen {
		return nil
	}
	visited[screen] = struct{}{}

	key := screen.NavigationKey()
	if key == "" {
		return fmt.Errorf("nav: screen %q: %w", screen.Title(), ErrEmptyKey)
	}
	if existing, ok := r.byKey[key]; ok && existing != screen {
		return fmt.Errorf("nav: %q used by %q and %q: %w", key, existing.Title(), screen.Title(), ErrDuplicateKey)
	}
	r.byKey[key] = screen
	r.order = append(r.order, screen)

	for _, child := range screen.Children() {
		if err := r.add(child, visited); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the screen registered under key.
func (r *Registry[S]) Lookup(key string) (S, bool) {
	screen, ok := r.byKey[key]
	return screen, ok
}

// Keys returns every registered navigation key, sorted.
func (r *Registry[S]) Keys() []string {
	keys := make([]string, 0, len(r.byKey))
	for key := range r.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Screens returns the registered screens in discovery order.
func (r *Registry[S]) Screens() []S {
	out := make([]S, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered screens.
func (r *Registry[S]) Len() int {
	return len(r.order)
}
