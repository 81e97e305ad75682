// Package dgt provides a high-level handle for a DGT electronic chessboard
// connected over a serial transport.
//
// Board wraps an io.ReadWriter (typically a serial port) and exposes the
// board's request/response operations plus a receive loop for update mode.
//
// Example:
//
//	port, _ := serialport.Open(serialport.Config{Device: "/dev/ttyUSB0"})
//	board := dgt.New(port,
//	    dgt.WithLogger(logger),
//	    dgt.WithUpdateHandler(func(u protocol.FieldUpdate) {
//	        tracker.Apply(u)
//	    }),
//	)
//
//	if err := board.Reset(); err != nil { ... }
//	layout, err := board.RequestBoard(ctx)
//
// The board may emit spontaneous FieldUpdate and Clock messages once update
// mode is enabled, interleaved with solicited responses. Request operations
// dispatch those to the registered handlers and keep waiting for the
// solicited message type, so a request never fails just because a piece
// moved while it was in flight.
//
// All I/O is blocking and half duplex; Board is not safe for concurrent
// use.
package dgt
