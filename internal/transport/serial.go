// Package transport provides the physical-bus collaborators for the GPS
// driver: a UART transport, a register-polled I2C transport for modules
// like the PA1010D, and a GPIO power-enable line.
package transport

import (
	"fmt"
	"io"

	serial "github.com/jacobsa/go-serial/serial"
)

// Serial reads NMEA bytes from a UART-attached receiver.
type Serial struct {
	port io.ReadWriteCloser
	buf  [512]byte
}

// OpenSerial opens the receiver's UART in non-blocking-ish mode: reads
// return whatever arrived within the inter-character timeout instead of
// waiting for a full buffer.
func OpenSerial(portName string, baudRate uint) (*Serial, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		MinimumReadSize:       0,
		InterCharacterTimeout: 100,
	}
	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("transport: open serial %s: %w", portName, err)
	}
	return &Serial{port: port}, nil
}

// ReadAvailable returns the bytes currently buffered by the port. A read
// timeout reports as no data, not an error.
func (s *Serial) ReadAvailable() ([]byte, error) {
	n, err := s.port.Read(s.buf[:])
	if n > 0 {
		out := make([]byte, n)
		copy(out, s.buf[:n])
		return out, nil
	}
	if err == nil || err == io.EOF {
		return nil, nil
	}
	return nil, fmt.Errorf("transport: serial read: %w", err)
}

func (s *Serial) Close() error {
	return s.port.Close()
}
