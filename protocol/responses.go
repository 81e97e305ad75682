package protocol

import (
	"fmt"
	"strings"
)

// BoardSize is the number of squares on the board.
const BoardSize = 64

// Board is the full 64-square layout in device order: index 0 is the first
// square the board reports, rank-major. No rank/file reinterpretation is
// applied; callers see exactly the orientation the hardware delivers.
type Board [BoardSize]Piece

// Required payload sizes for the fixed-format message types.
const (
	boardDumpPayloadSize   = BoardSize
	clockPayloadSize       = 7
	fieldUpdatePayloadSize = 2
	versionPayloadSize     = 2
)

// Response is a decoded message from the board. Exactly one concrete type
// exists per message type; switch on the concrete type to consume it.
type Response interface {
	// MessageType returns the wire message type the response was decoded from.
	MessageType() MessageType
}

// BoardDump is the response to CmdRequestBoard: the complete square layout.
type BoardDump struct {
	Board Board
}

// FieldUpdate reports that a single square changed. The board emits these
// spontaneously once update mode is enabled.
type FieldUpdate struct {
	// Square is the changed square index, 0-63
	Square int

	// Piece is the new occupant of the square (Empty when a piece lifted)
	Piece Piece
}

// TimeRemaining is one side's clock reading.
type TimeRemaining struct {
	Hours   uint8
	Minutes uint8
	Seconds uint8
}

func (t TimeRemaining) String() string {
	return fmt.Sprintf("%d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// ClockStatus indicates which side's clock is running.
type ClockStatus int

const (
	// NoClock means no clock is connected to the board
	NoClock ClockStatus = iota

	WhiteToMove
	BlackToMove
)

func (s ClockStatus) String() string {
	switch s {
	case WhiteToMove:
		return "white to move"
	case BlackToMove:
		return "black to move"
	default:
		return "no clock"
	}
}

// Clock is the response to CmdRequestClock, also emitted spontaneously in
// update mode.
type Clock struct {
	White  TimeRemaining
	Black  TimeRemaining
	Status ClockStatus
}

// SerialNumber is the board serial number, decoded best-effort.
type SerialNumber string

// BusAddress is the board bus address, decoded best-effort.
type BusAddress string

// Trademark is the board trademark text, decoded best-effort.
type Trademark string

// Version is the board firmware version.
type Version struct {
	Major byte
	Minor byte
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (BoardDump) MessageType() MessageType    { return MsgBoardDump }
func (Clock) MessageType() MessageType        { return MsgClock }
func (FieldUpdate) MessageType() MessageType  { return MsgFieldUpdate }
func (BusAddress) MessageType() MessageType   { return MsgBusAddress }
func (SerialNumber) MessageType() MessageType { return MsgSerialNumber }
func (Trademark) MessageType() MessageType    { return MsgTrademark }
func (Version) MessageType() MessageType      { return MsgVersion }

// Decode turns a recovered frame into a typed response.
// A type code that does not name a known message type yields
// UnknownMessageTypeError.
func Decode(frame *Frame) (Response, error) {
	msgType, ok := MessageTypeFromByte(frame.Type)
	if !ok {
		return nil, &UnknownMessageTypeError{Code: frame.Type}
	}
	return DecodeResponse(msgType, frame.Payload)
}

// DecodeResponse validates and decodes a payload under the given message
// type. Length and content rules are fixed per type; any violation yields a
// typed error and no response.
func DecodeResponse(msgType MessageType, payload []byte) (Response, error) {
	switch msgType {
	case MsgBoardDump:
		return decodeBoardDump(payload)

	case MsgClock:
		return decodeClock(payload)

	case MsgFieldUpdate:
		return decodeFieldUpdate(payload)

	case MsgSerialNumber:
		return SerialNumber(decodeText(payload)), nil

	case MsgBusAddress:
		return BusAddress(decodeText(payload)), nil

	case MsgTrademark:
		return Trademark(decodeText(payload)), nil

	case MsgVersion:
		if len(payload) != versionPayloadSize {
			return nil, &InvalidLengthError{MessageType: msgType, Expected: versionPayloadSize, Actual: len(payload)}
		}
		return Version{Major: payload[0], Minor: payload[1]}, nil

	case MsgEEMoves:
		return nil, ErrEEMovesUnsupported

	default:
		return nil, &UnknownMessageTypeError{Code: byte(msgType)}
	}
}

// decodeBoardDump decodes all 64 square bytes. A single unrecognized piece
// code rejects the whole message; a Board never holds an invalid piece.
func decodeBoardDump(payload []byte) (Response, error) {
	if len(payload) != boardDumpPayloadSize {
		return nil, &InvalidLengthError{MessageType: MsgBoardDump, Expected: boardDumpPayloadSize, Actual: len(payload)}
	}

	var board Board
	for i, b := range payload {
		piece, ok := PieceFromByte(b)
		if !ok {
			return nil, &InvalidPieceError{Byte: b}
		}
		board[i] = piece
	}

	return BoardDump{Board: board}, nil
}

// decodeClock decodes the 7-byte clock payload: three BCD bytes per side
// (hours, minutes, seconds) followed by the status byte.
func decodeClock(payload []byte) (Response, error) {
	if len(payload) != clockPayloadSize {
		return nil, &InvalidLengthError{MessageType: MsgClock, Expected: clockPayloadSize, Actual: len(payload)}
	}

	return Clock{
		White:  timeFromBCD(payload[0], payload[1], payload[2]),
		Black:  timeFromBCD(payload[3], payload[4], payload[5]),
		Status: clockStatusFromByte(payload[6]),
	}, nil
}

func decodeFieldUpdate(payload []byte) (Response, error) {
	if len(payload) != fieldUpdatePayloadSize {
		return nil, &InvalidLengthError{MessageType: MsgFieldUpdate, Expected: fieldUpdatePayloadSize, Actual: len(payload)}
	}

	square := int(payload[0])
	if square >= BoardSize {
		return nil, &InvalidSquareError{Square: square}
	}

	piece, ok := PieceFromByte(payload[1])
	if !ok {
		return nil, &InvalidPieceError{Byte: payload[1]}
	}

	return FieldUpdate{Square: square, Piece: piece}, nil
}

// bcd decodes a packed binary-coded-decimal byte: each nibble is one
// decimal digit, so 0x59 is 59, never 89.
func bcd(b byte) uint8 {
	return 10*(b>>4) + (b & 0x0F)
}

func timeFromBCD(hours, minutes, seconds byte) TimeRemaining {
	return TimeRemaining{
		Hours:   bcd(hours),
		Minutes: bcd(minutes),
		Seconds: bcd(seconds),
	}
}

// clockStatusFromByte decodes the clock status flags: bit 0 set means no
// clock is connected, otherwise bit 3 selects the side to move.
func clockStatusFromByte(b byte) ClockStatus {
	switch {
	case b&0x01 != 0:
		return NoClock
	case b&0x08 != 0:
		return BlackToMove
	default:
		return WhiteToMove
	}
}

// decodeText decodes an informational text payload. Text fields are
// best-effort: invalid byte sequences are replaced, never rejected.
func decodeText(payload []byte) string {
	return strings.ToValidUTF8(string(payload), "�")
}
