// Command dgt-monitor connects to a DGT electronic chessboard over a
// serial port, prints the initial layout, then follows the board's update
// stream, reporting every square change and whether the layout matches a
// starting position.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dgtkit/go-dgt/dgt"
	"github.com/dgtkit/go-dgt/game"
	"github.com/dgtkit/go-dgt/protocol"
	"github.com/dgtkit/go-dgt/serialport"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	device := flag.String("port", "", "serial device path (overrides config)")
	flag.Parse()

	if err := run(*configPath, *device); err != nil {
		fmt.Fprintln(os.Stderr, "dgt-monitor:", err)
		os.Exit(1)
	}
}

func run(configPath, device string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if device != "" {
		cfg.Serial.Device = device
	}

	logger, err := cfg.Log.buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	port, err := serialport.Open(cfg.portConfig())
	if err != nil {
		return err
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board := dgt.New(port, dgt.WithLogger(logger))

	if err := board.Reset(); err != nil {
		return err
	}

	layout, err := board.RequestBoard(ctx)
	if err != nil {
		return fmt.Errorf("request board: %w", err)
	}
	tracker := game.NewTracker(layout)
	logger.Info("board connected",
		zap.Stringer("start_position", tracker.Classify()),
	)
	fmt.Println(tracker)

	if serialNum, err := board.SerialNumber(ctx); err != nil {
		logger.Warn("serial number unavailable", zap.Error(err))
	} else {
		logger.Info("board identity", zap.String("serial_number", serialNum))
	}
	if version, err := board.Version(ctx); err != nil {
		logger.Warn("version unavailable", zap.Error(err))
	} else {
		logger.Info("board firmware", zap.Stringer("version", version))
	}

	if err := board.EnableUpdates(); err != nil {
		return err
	}

	handler := func(resp protocol.Response) error {
		switch r := resp.(type) {
		case protocol.FieldUpdate:
			tracker.Apply(r)
			logger.Info("square changed",
				zap.Int("square", r.Square),
				zap.Stringer("piece", r.Piece),
				zap.Stringer("start_position", tracker.Classify()),
			)
			fmt.Println(tracker)
		case protocol.Clock:
			logger.Info("clock",
				zap.Stringer("white", r.White),
				zap.Stringer("black", r.Black),
				zap.Stringer("status", r.Status),
			)
		default:
			logger.Info("message", zap.Stringer("type", resp.MessageType()))
		}
		return nil
	}

	// An idle board trips the read timeout between moves; only a real
	// transport failure or a signal should end the monitor.
	for {
		err := board.Listen(ctx, handler)
		switch {
		case errors.Is(err, serialport.ErrReadTimeout):
			continue
		case errors.Is(err, context.Canceled):
			return nil
		default:
			return err
		}
	}
}
