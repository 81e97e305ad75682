package protocol

import (
	"errors"
	"fmt"
)

// ErrEEMovesUnsupported is returned for EEMoves messages. Their payload
// format is undocumented; failing explicitly beats misdecoding silently.
var ErrEEMovesUnsupported = errors.New("EE moves payload format is not supported")

// FrameLengthError indicates a frame header declared a total length smaller
// than the header itself. The frame cannot be skipped safely, so this is
// not recoverable by resynchronization.
type FrameLengthError struct {
	// Total is the declared total length, including the 3 header bytes
	Total int
}

func (e *FrameLengthError) Error() string {
	return fmt.Sprintf("invalid frame length %d: total must be at least %d", e.Total, HeaderSize)
}

// UnknownMessageTypeError indicates a well-formed frame whose type code
// does not name a known message type.
type UnknownMessageTypeError struct {
	// Code is the unrecognized type code (low 7 bits of the type byte)
	Code byte
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("unknown message type 0x%02X", e.Code)
}

// InvalidLengthError indicates a payload whose length does not match the
// fixed schema of its message type.
type InvalidLengthError struct {
	// MessageType is the message the payload arrived under
	MessageType MessageType

	// Expected is the payload length the message type requires
	Expected int

	// Actual is the payload length received
	Actual int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid %s payload length: expected %d bytes, got %d",
		e.MessageType, e.Expected, e.Actual)
}

// InvalidPieceError indicates a square byte outside the defined piece range
// inside a BoardDump or FieldUpdate payload.
type InvalidPieceError struct {
	// Byte is the unrecognized piece code
	Byte byte
}

func (e *InvalidPieceError) Error() string {
	return fmt.Sprintf("invalid piece code 0x%02X", e.Byte)
}

// InvalidSquareError indicates a FieldUpdate square index outside 0-63.
type InvalidSquareError struct {
	// Square is the out-of-range index
	Square int
}

func (e *InvalidSquareError) Error() string {
	return fmt.Sprintf("invalid square index %d: must be below 64", e.Square)
}

// IsParseError reports whether err describes malformed message content
// rather than a transport failure. Parse errors poison only the message
// they occurred in; a receive loop may log them and keep reading.
func IsParseError(err error) bool {
	var (
		frameLen  *FrameLengthError
		unknown   *UnknownMessageTypeError
		invLen    *InvalidLengthError
		invPiece  *InvalidPieceError
		invSquare *InvalidSquareError
	)
	switch {
	case errors.Is(err, ErrEEMovesUnsupported),
		errors.As(err, &frameLen),
		errors.As(err, &unknown),
		errors.As(err, &invLen),
		errors.As(err, &invPiece),
		errors.As(err, &invSquare):
		return true
	}
	return false
}
