// Package input maps terminal keys and evdev game-pad events to virtual
// buttons.
package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
)

var defaultBindings = map[string]constants.VirtualButton{
	"up":        constants.VirtualButtonUp,
	"k":         constants.VirtualButtonUp,
	"down":      constants.VirtualButtonDown,
	"j":         constants.VirtualButtonDown,
	"left":      constants.VirtualButtonLeft,
	"right":     constants.VirtualButtonRight,
	"a":         constants.VirtualButtonA,
	"y":         constants.VirtualButtonA,
	"esc":       constants.VirtualButtonB,
	"backspace": constants.VirtualButtonB,
	"n":         constants.VirtualButtonB,
	"x":         constants.VirtualButtonX,
	"[":         constants.VirtualButtonL1,
	"]":         constants.VirtualButtonR1,
	"enter":     constants.VirtualButtonStart,
	"/":         constants.VirtualButtonSelect,
	":":         constants.VirtualButtonSelect,
	"h":         constants.VirtualButtonMenu,
	"home":      constants.VirtualButtonMenu,
	"q":         constants.VirtualButtonQuit,
	"ctrl+c":    constants.VirtualButtonQuit,
}

// Keymap maps bubbletea key strings (tea.KeyMsg.String()) to buttons.
type Keymap struct {
	bindings map[string]constants.VirtualButton
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{bindings: maps.Clone(defaultBindings)}
}

// NewKeymap applies overrides, terminal key to button name, on top of the
// defaults. "Unassigned" removes a default binding.
func NewKeymap(overrides map[string]string) (*Keymap, error) {
	km := DefaultKeymap()
	for key, name := range overrides {
		if strings.EqualFold(name, constants.VirtualButtonUnassigned.String()) {
			delete(km.bindings, key)
			continue
		}
		button, ok := constants.ParseVirtualButton(name)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown button %q", key, name)
		}
		km.Bind(key, button)
	}
	return km, nil
}

func (k *Keymap) Bind(key string, button constants.VirtualButton) {
	k.bindings[key] = button
}

// Button returns the button bound to key, or VirtualButtonUnassigned.
func (k *Keymap) Button(key string) constants.VirtualButton {
	return k.bindings[key]
}

// Keys lists the keys bound to button, sorted, for help text.
func (k *Keymap) Keys(button constants.VirtualButton) []string {
	var keys []string
	for key, b := range k.bindings {
		if b == button {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// FirstKey returns the shortest key bound to button, falling back to the
// button name when nothing is bound.
func (k *Keymap) FirstKey(button constants.VirtualButton) string {
	keys := k.Keys(button)
	if len(keys) == 0 {
		return button.String()
	}
	slices.SortStableFunc(keys, func(a, b string) int { return len(a) - len(b) })
	return keys[0]
}
