package transport

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// DefaultI2CAddr is the PA1010D's fixed bus address.
const DefaultI2CAddr = 0x10

// The module exposes its NMEA stream through a 255-byte read window.
const i2cReadChunk = 255

// I2C polls NMEA bytes from a register-polled receiver such as the
// PA1010D breakout.
type I2C struct {
	bus  i2c.BusCloser
	dev  i2c.Dev
	addr uint16
	buf  [i2cReadChunk]byte
}

// OpenI2C opens busName (e.g. "1" for /dev/i2c-1, "" for the first bus)
// and targets the receiver at addr.
func OpenI2C(busName string, addr uint16) (*I2C, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("transport: periph host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("transport: open i2c bus %q: %w", busName, err)
	}
	return &I2C{
		bus:  bus,
		dev:  i2c.Dev{Bus: bus, Addr: addr},
		addr: addr,
	}, nil
}

// ReadAvailable polls one chunk from the module's read window. The
// PA1010D pads idle reads with newline bytes, so an all-newline chunk
// means no fresh data.
func (t *I2C) ReadAvailable() ([]byte, error) {
	if err := t.dev.Tx(nil, t.buf[:]); err != nil {
		return nil, fmt.Errorf("transport: i2c read at 0x%02X: %w", t.addr, err)
	}
	idle := true
	for _, b := range t.buf {
		if b != '\n' {
			idle = false
			break
		}
	}
	if idle {
		return nil, nil
	}
	out := make([]byte, i2cReadChunk)
	copy(out, t.buf[:])
	return out, nil
}

// Connected reports whether the module answers at its address.
func (t *I2C) Connected() bool {
	var probe [1]byte
	return t.dev.Tx(nil, probe[:]) == nil
}

// Addr returns the receiver's bus address.
func (t *I2C) Addr() uint16 {
	return t.addr
}

// Scan probes the standard 7-bit address range and returns every
// responding address. Diagnostic use only; probing is read-based and
// harmless to the receiver.
func (t *I2C) Scan() []uint16 {
	var found []uint16
	for addr := uint16(0x08); addr <= 0x77; addr++ {
		dev := i2c.Dev{Bus: t.bus, Addr: addr}
		var probe [1]byte
		if dev.Tx(nil, probe[:]) == nil {
			found = append(found, addr)
		}
	}
	return found
}

func (t *I2C) Close() error {
	return t.bus.Close()
}
