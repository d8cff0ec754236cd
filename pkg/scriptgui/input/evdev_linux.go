//go:build linux

package input

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"

	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
)

// DefaultCodes maps game-pad and keyboard codes to virtual buttons.
var DefaultCodes = map[evdev.EvCode]constants.VirtualButton{
	evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
	evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
	evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
	evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
	evdev.BTN_SOUTH:      constants.VirtualButtonA,
	evdev.BTN_EAST:       constants.VirtualButtonB,
	evdev.BTN_NORTH:      constants.VirtualButtonX,
	evdev.BTN_WEST:       constants.VirtualButtonY,
	evdev.BTN_TL:         constants.VirtualButtonL1,
	evdev.BTN_TR:         constants.VirtualButtonR1,
	evdev.BTN_START:      constants.VirtualButtonStart,
	evdev.BTN_SELECT:     constants.VirtualButtonSelect,
	evdev.BTN_MODE:       constants.VirtualButtonMenu,

	evdev.KEY_UP:        constants.VirtualButtonUp,
	evdev.KEY_DOWN:      constants.VirtualButtonDown,
	evdev.KEY_LEFT:      constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:     constants.VirtualButtonRight,
	evdev.KEY_ENTER:     constants.VirtualButtonStart,
	evdev.KEY_ESC:       constants.VirtualButtonB,
	evdev.KEY_BACKSPACE: constants.VirtualButtonB,
}

// Device reads button events from an evdev node such as /dev/input/event3.
type Device struct {
	path     string
	dev      *evdev.InputDevice
	codes    map[evdev.EvCode]constants.VirtualButton
	repeater *Repeater
	logger   *slog.Logger
}

// DeviceOption configures OpenDevice.
type DeviceOption func(*Device)

// WithRepeat sets the held-direction timing.
func WithRepeat(r *Repeater) DeviceOption {
	return func(d *Device) {
		d.repeater = r
	}
}

// WithCodes replaces DefaultCodes.
func WithCodes(codes map[evdev.EvCode]constants.VirtualButton) DeviceOption {
	return func(d *Device) {
		d.codes = codes
	}
}

func OpenDevice(path string, opts ...DeviceOption) (*Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}

	d := &Device{
		path:     path,
		dev:      dev,
		codes:    DefaultCodes,
		repeater: NewRepeater(),
		logger:   internal.GetInternalLogger().With("device", path),
	}
	for _, opt := range opts {
		opt(d)
	}

	if name, err := dev.Name(); err == nil {
		d.logger.Info("Opened input device", "name", name)
	}
	return d, nil
}

// Name returns the kernel name of the device.
func (d *Device) Name() string {
	name, err := d.dev.Name()
	if err != nil {
		return d.path
	}
	return name
}

// Run delivers button events to sink until ctx is done or the device fails.
// It closes the device on return.
func (d *Device) Run(ctx context.Context, sink Sink) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan keyEvent)
	readErr := make(chan error, 1)

	go func() {
		defer close(events)
		for {
			ev, err := d.dev.ReadOne()
			if err != nil {
				readErr <- err
				return
			}
			key, ok := d.translate(ev)
			if !ok {
				continue
			}
			select {
			case events <- key:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Closing the node unblocks ReadOne.
	go func() {
		<-ctx.Done()
		_ = d.dev.Close()
	}()

	pump(ctx, events, d.repeater, sink, d.logger)

	if ctx.Err() != nil {
		return nil
	}
	select {
	case err := <-readErr:
		return fmt.Errorf("input: read %s: %w", d.path, err)
	default:
		return nil
	}
}

func (d *Device) translate(ev *evdev.InputEvent) (keyEvent, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return keyEvent{}, false
	}
	button, ok := d.codes[ev.Code]
	if !ok {
		return keyEvent{}, false
	}
	return keyEvent{button: button, value: ev.Value}, true
}

// Close releases the device. Run closes it on its own.
func (d *Device) Close() error {
	return d.dev.Close()
}
