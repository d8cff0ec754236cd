package input

import (
	"time"

	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
)

// Repeater tracks held directions and turns a held d-pad into a stream of
// repeated presses: the first repeat after Delay, then one every Interval.
//
// Terminals report key repeats themselves; Repeater is for devices that
// only report press and release, such as evdev game pads.
type Repeater struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeat  time.Time
	delay       time.Duration
	interval    time.Duration
	hasRepeated bool
}

// NewRepeater creates a Repeater with the default timing.
func NewRepeater() *Repeater {
	return NewRepeaterWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

func NewRepeaterWithTiming(delay, interval time.Duration) *Repeater {
	return &Repeater{
		delay:      delay,
		interval:   interval,
		lastRepeat: time.Now(),
	}
}

// SetHeld records a press or release at now. It returns false for
// non-directional buttons, which the Repeater ignores.
func (r *Repeater) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	var slot *bool
	switch button {
	case constants.VirtualButtonUp:
		slot = &r.held.up
	case constants.VirtualButtonDown:
		slot = &r.held.down
	case constants.VirtualButtonLeft:
		slot = &r.held.left
	case constants.VirtualButtonRight:
		slot = &r.held.right
	default:
		return false
	}

	*slot = held
	// A new press restarts the delay.
	r.hasRepeated = false
	r.lastRepeat = now
	return true
}

// IsHeld returns true if any direction is currently held.
func (r *Repeater) IsHeld() bool {
	return r.held.up || r.held.down || r.held.left || r.held.right
}

// Held returns the held direction. With several held the priority is up,
// down, left, right. VirtualButtonUnassigned means none.
func (r *Repeater) Held() constants.VirtualButton {
	switch {
	case r.held.up:
		return constants.VirtualButtonUp
	case r.held.down:
		return constants.VirtualButtonDown
	case r.held.left:
		return constants.VirtualButtonLeft
	case r.held.right:
		return constants.VirtualButtonRight
	}
	return constants.VirtualButtonUnassigned
}

// Update reports the direction to repeat at now, or VirtualButtonUnassigned
// when no repeat is due. Call it on every tick.
func (r *Repeater) Update(now time.Time) constants.VirtualButton {
	if !r.IsHeld() {
		r.lastRepeat = now
		r.hasRepeated = false
		return constants.VirtualButtonUnassigned
	}

	threshold := r.interval
	if !r.hasRepeated {
		threshold = r.delay
	}

	if now.Sub(r.lastRepeat) >= threshold {
		r.lastRepeat = now
		r.hasRepeated = true
		return r.Held()
	}
	return constants.VirtualButtonUnassigned
}

// Reset clears all held directions and timing state.
func (r *Repeater) Reset() {
	r.held.up = false
	r.held.down = false
	r.held.left = false
	r.held.right = false
	r.hasRepeated = false
	r.lastRepeat = time.Now()
}
