package dgt

import (
	"time"

	"go.uber.org/zap"

	"github.com/dgtkit/go-dgt/protocol"
)

// UpdateHandler receives spontaneous field updates that arrive while a
// request operation is waiting for its solicited response.
type UpdateHandler func(protocol.FieldUpdate)

// ClockHandler receives spontaneous clock messages that arrive while a
// request operation is waiting for its solicited response.
type ClockHandler func(protocol.Clock)

// Config holds the board handle configuration.
type Config struct {
	// Logger receives debug/warn logging (optional, defaults to a no-op)
	Logger *zap.Logger

	// UpdateHandler receives unsolicited field updates (optional)
	UpdateHandler UpdateHandler

	// ClockHandler receives unsolicited clock messages (optional)
	ClockHandler ClockHandler

	// CommandDelay is an optional pause after each command write, for
	// transports that need settling time
	CommandDelay time.Duration
}

func defaultConfig() Config {
	return Config{
		Logger: zap.NewNop(),
	}
}

// Option is a functional option for configuring the Board handle.
type Option func(*Config)

// WithLogger sets the logger used by the handle.
//
// Example:
//
//	board := dgt.New(port, dgt.WithLogger(logger))
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithUpdateHandler sets a handler for field updates that arrive while a
// request operation is in flight.
func WithUpdateHandler(handler UpdateHandler) Option {
	return func(c *Config) {
		c.UpdateHandler = handler
	}
}

// WithClockHandler sets a handler for clock messages that arrive while a
// request operation is in flight.
func WithClockHandler(handler ClockHandler) Option {
	return func(c *Config) {
		c.ClockHandler = handler
	}
}

// WithCommandDelay sets a pause applied after every command write.
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}
