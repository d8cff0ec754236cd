//go:build !linux

package input

import "context"

// Device is unavailable on this platform.
type Device struct{}

type DeviceOption func(*Device)

func WithRepeat(*Repeater) DeviceOption {
	return func(*Device) {}
}

func OpenDevice(string, ...DeviceOption) (*Device, error) {
	return nil, ErrUnsupported
}

func (d *Device) Name() string { return "" }

func (d *Device) Run(context.Context, Sink) error {
	return ErrUnsupported
}

func (d *Device) Close() error { return nil }
