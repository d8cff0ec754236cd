package input

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
)

// ErrUnsupported is returned by OpenDevice on platforms without evdev.
var ErrUnsupported = errors.New("input: hardware devices are only supported on linux")

// ButtonEvent is one press, release or auto-repeat of a virtual button.
type ButtonEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// Sink receives button events. It is called from the device goroutine.
type Sink func(ButtonEvent)

// Key event values as reported by the kernel.
const (
	keyReleased int32 = 0
	keyPressed  int32 = 1
	keyRepeated int32 = 2
)

type keyEvent struct {
	button constants.VirtualButton
	value  int32
}

const repeatTick = 10 * time.Millisecond

// pump forwards key events to sink and synthesises repeats for held
// directions until ctx is done or events is closed. Kernel autorepeat
// events are dropped; the Repeater owns repeat timing.
func pump(ctx context.Context, events <-chan keyEvent, repeater *Repeater, sink Sink, logger *slog.Logger) {
	ticker := time.NewTicker(repeatTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.value == keyRepeated {
				continue
			}
			pressed := ev.value == keyPressed
			repeater.SetHeld(ev.button, pressed, time.Now())
			logger.Debug("Device button", "button", ev.button.String(), "pressed", pressed)
			sink(ButtonEvent{Button: ev.button, Pressed: pressed})

		case now := <-ticker.C:
			if button := repeater.Update(now); button != constants.VirtualButtonUnassigned {
				sink(ButtonEvent{Button: button, Pressed: true, Repeat: true})
			}
		}
	}
}
