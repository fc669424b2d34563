package transport

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// EnablePin drives the receiver's power-enable line.
type EnablePin struct {
	pin gpio.PinIO
}

// OpenEnablePin looks up a GPIO by name (e.g. "GPIO17").
func OpenEnablePin(name string) (*EnablePin, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("transport: periph host init: %w", err)
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("transport: enable pin %q not found", name)
	}
	return &EnablePin{pin: pin}, nil
}

// SetEnabled drives the line high to power the module, low to cut it.
func (p *EnablePin) SetEnabled(enabled bool) error {
	level := gpio.Low
	if enabled {
		level = gpio.High
	}
	if err := p.pin.Out(level); err != nil {
		return fmt.Errorf("transport: enable pin %s: %w", p.pin.Name(), err)
	}
	return nil
}
