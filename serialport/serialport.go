// Package serialport opens the serial transport a DGT board hangs off.
//
// The board speaks 9600 baud, 8 data bits, no parity, one stop bit. Reads
// carry a timeout so a silent board surfaces as an error instead of
// blocking forever.
package serialport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// Defaults matching the board's fixed line settings.
const (
	DefaultBaudRate    = 9600
	DefaultReadTimeout = time.Second
)

// ErrReadTimeout is returned by Read when no byte arrives within the
// configured read timeout.
var ErrReadTimeout = errors.New("serialport: read timed out")

// Config holds the connection settings for a board.
type Config struct {
	// Device is the serial device path, e.g. /dev/ttyUSB0 or COM3
	Device string

	// BaudRate is the line speed; 0 selects DefaultBaudRate
	BaudRate int

	// ReadTimeout bounds each read; 0 selects DefaultReadTimeout
	ReadTimeout time.Duration
}

// Port is an open serial connection to a board.
type Port struct {
	inner io.ReadWriteCloser
}

// Open opens the configured serial device with the board's line settings.
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, errors.New("serialport: device path is required")
	}

	baud := cfg.BaudRate
	if baud == 0 {
		baud = DefaultBaudRate
	}
	timeout := cfg.ReadTimeout
	if timeout == 0 {
		timeout = DefaultReadTimeout
	}

	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}

	if err := port.SetReadTimeout(timeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", cfg.Device, err)
	}

	return &Port{inner: port}, nil
}

// Read reads from the port. go.bug.st/serial reports an expired read
// timeout as a zero-byte read with no error; that is converted to
// ErrReadTimeout so protocol-level readers never spin on an idle line.
func (p *Port) Read(buf []byte) (int, error) {
	n, err := p.inner.Read(buf)
	if err == nil && n == 0 && len(buf) > 0 {
		return 0, ErrReadTimeout
	}
	return n, err
}

// Write writes to the port.
func (p *Port) Write(buf []byte) (int, error) {
	return p.inner.Write(buf)
}

// Close closes the port.
func (p *Port) Close() error {
	return p.inner.Close()
}

var _ io.ReadWriteCloser = (*Port)(nil)
