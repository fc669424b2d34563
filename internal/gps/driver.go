// Package gps implements an NMEA-0183 receiver driver: sentence framing,
// checksum validation, GGA/RMC parsing, a last-known-fix state model and
// great-circle navigation queries. The physical bus is abstracted behind
// Transport so the same driver serves UART- and I2C-attached modules.
package gps

import "fmt"

// Transport supplies raw bytes from the receiver. ReadAvailable returns
// whatever the bus currently has buffered — possibly nothing — and must
// not block indefinitely.
type Transport interface {
	ReadAvailable() ([]byte, error)
}

// PowerControl toggles module power where the wiring provides an enable
// line.
type PowerControl interface {
	SetEnabled(enabled bool) error
}

// Driver ties transport, framing, parsing and fix state into one update
// cycle. A Driver owns its state exclusively and performs no internal
// scheduling: callers poll Update from their own loop, one Driver per
// physical receiver.
type Driver struct {
	transport Transport
	power     PowerControl
	framer    framer
	fix       Fix
}

// NewDriver returns a driver reading from transport. power may be nil for
// modules wired without a controllable enable line.
func NewDriver(transport Transport, power PowerControl) *Driver {
	return &Driver{transport: transport, power: power}
}

// SetBufferLimit overrides the framer's newline-free growth cap.
func (d *Driver) SetBufferLimit(n int) {
	d.framer.limit = n
}

// Enable powers the module on. A no-op without power control.
func (d *Driver) Enable() error {
	if d.power == nil {
		return nil
	}
	return d.power.SetEnabled(true)
}

// Disable powers the module off. A no-op without power control.
func (d *Driver) Disable() error {
	if d.power == nil {
		return nil
	}
	return d.power.SetEnabled(false)
}

// Update pulls available bytes from the transport and runs every complete
// sentence through the parser. It returns true when at least one candidate
// was processed, whether or not it validated or changed state. A zero-byte
// read is not an error; transport failures are surfaced and leave the fix
// state as it was.
func (d *Driver) Update() (bool, error) {
	data, err := d.transport.ReadAvailable()
	if err != nil {
		return false, fmt.Errorf("gps: transport read: %w", err)
	}
	if len(data) == 0 {
		return false, nil
	}

	lines, err := d.framer.ingest(data)
	for _, line := range lines {
		// Recorded before parsing so diagnostics see rejects too.
		d.fix.lastSentence = line
		d.fix.parseSentence(line)
	}
	return len(lines) > 0, err
}

// Fix exposes the driver's state snapshot for read-only queries.
func (d *Driver) Fix() *Fix {
	return &d.fix
}
