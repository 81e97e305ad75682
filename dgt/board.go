package dgt

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/dgtkit/go-dgt/protocol"
)

// Board is a handle for one DGT chessboard on one transport.
//
// All operations are blocking and half duplex: a command is written, then
// responses are read until the solicited message type arrives. Spontaneous
// FieldUpdate and Clock messages received in between are dispatched to the
// configured handlers.
//
// Board is not safe for concurrent use.
type Board struct {
	device io.ReadWriter
	reader *protocol.FrameReader
	config Config
}

// New creates a board handle over the given transport.
//
// Example:
//
//	board := dgt.New(port,
//	    dgt.WithLogger(logger),
//	    dgt.WithCommandDelay(50*time.Millisecond),
//	)
func New(device io.ReadWriter, opts ...Option) *Board {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Board{
		device: device,
		reader: protocol.NewFrameReader(device),
		config: cfg,
	}
}

// Reset resets the board to its power-on state. The board sends no
// response.
func (b *Board) Reset() error {
	return b.send(protocol.CmdReset)
}

// EnableUpdates puts the board in update mode: it will spontaneously emit
// FieldUpdate and Clock messages as physical state changes.
func (b *Board) EnableUpdates() error {
	return b.send(protocol.CmdEnableUpdate)
}

// EnableNiceUpdates puts the board in "nice" update mode.
func (b *Board) EnableNiceUpdates() error {
	return b.send(protocol.CmdRequestNiceUpdate)
}

// RequestUpdates puts the board in board-change update mode.
func (b *Board) RequestUpdates() error {
	return b.send(protocol.CmdRequestUpdate)
}

// RequestBoard requests and returns the complete 64-square layout.
func (b *Board) RequestBoard(ctx context.Context) (protocol.Board, error) {
	resp, err := b.request(ctx, protocol.CmdRequestBoard, protocol.MsgBoardDump)
	if err != nil {
		return protocol.Board{}, err
	}
	return resp.(protocol.BoardDump).Board, nil
}

// Clock requests and returns the current clock data.
func (b *Board) Clock(ctx context.Context) (protocol.Clock, error) {
	resp, err := b.request(ctx, protocol.CmdRequestClock, protocol.MsgClock)
	if err != nil {
		return protocol.Clock{}, err
	}
	return resp.(protocol.Clock), nil
}

// SerialNumber requests and returns the board serial number.
func (b *Board) SerialNumber(ctx context.Context) (string, error) {
	resp, err := b.request(ctx, protocol.CmdRequestSerialNumber, protocol.MsgSerialNumber)
	if err != nil {
		return "", err
	}
	return string(resp.(protocol.SerialNumber)), nil
}

// BusAddress requests and returns the board bus address.
func (b *Board) BusAddress(ctx context.Context) (string, error) {
	resp, err := b.request(ctx, protocol.CmdRequestBusAddress, protocol.MsgBusAddress)
	if err != nil {
		return "", err
	}
	return string(resp.(protocol.BusAddress)), nil
}

// Trademark requests and returns the board trademark text.
func (b *Board) Trademark(ctx context.Context) (string, error) {
	resp, err := b.request(ctx, protocol.CmdRequestTrademark, protocol.MsgTrademark)
	if err != nil {
		return "", err
	}
	return string(resp.(protocol.Trademark)), nil
}

// Version requests and returns the board firmware version.
func (b *Board) Version(ctx context.Context) (protocol.Version, error) {
	resp, err := b.request(ctx, protocol.CmdRequestVersion, protocol.MsgVersion)
	if err != nil {
		return protocol.Version{}, err
	}
	return resp.(protocol.Version), nil
}

// ReadResponse reads and decodes the next message from the board.
// Decode failures are typed; use protocol.IsParseError to distinguish a
// malformed message from a transport failure.
func (b *Board) ReadResponse() (protocol.Response, error) {
	frame, err := b.reader.ReadFrame()
	if err != nil {
		return nil, err
	}

	resp, err := protocol.Decode(frame)
	if err != nil {
		return nil, err
	}

	b.config.Logger.Debug("message received",
		zap.Stringer("type", resp.MessageType()),
		zap.Int("payload_bytes", len(frame.Payload)),
	)

	return resp, nil
}

// Listen consumes the update stream, passing every decoded response to the
// handler until the context is cancelled, the transport fails, or the
// handler returns an error.
//
// Malformed messages are logged and skipped; a single bad message never
// ends the loop. Registered update/clock handlers fire before the handler.
// The context is checked between frames only: the underlying read is
// blocking, so cancellation takes effect once the transport's timeout
// elapses or the next frame arrives.
func (b *Board) Listen(ctx context.Context, handler func(protocol.Response) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		resp, err := b.ReadResponse()
		if err != nil {
			if protocol.IsParseError(err) {
				b.config.Logger.Warn("discarding malformed message", zap.Error(err))
				continue
			}
			return err
		}

		b.dispatch(resp)

		if err := handler(resp); err != nil {
			return err
		}
	}
}

// request writes a command, then reads responses until the solicited
// message type arrives. Spontaneous updates received meanwhile go to the
// configured handlers; any other message type fails the request.
func (b *Board) request(ctx context.Context, cmd protocol.Command, want protocol.MessageType) (protocol.Response, error) {
	if err := b.send(cmd); err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := b.ReadResponse()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cmd, err)
		}

		got := resp.MessageType()
		if got == want {
			return resp, nil
		}

		switch got {
		case protocol.MsgFieldUpdate, protocol.MsgClock:
			b.dispatch(resp)
		default:
			return nil, &UnexpectedResponseError{Want: want, Got: got}
		}
	}
}

// dispatch routes spontaneous update messages to the configured handlers.
func (b *Board) dispatch(resp protocol.Response) {
	switch r := resp.(type) {
	case protocol.FieldUpdate:
		if b.config.UpdateHandler != nil {
			b.config.UpdateHandler(r)
		}
	case protocol.Clock:
		if b.config.ClockHandler != nil {
			b.config.ClockHandler(r)
		}
	}
}

// send writes a single command byte, applying the configured delay.
func (b *Board) send(cmd protocol.Command) error {
	b.config.Logger.Debug("sending command", zap.Stringer("command", cmd))

	if _, err := b.device.Write(cmd.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", cmd, err)
	}

	if b.config.CommandDelay > 0 {
		time.Sleep(b.config.CommandDelay)
	}

	return nil
}
