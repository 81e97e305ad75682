package protocol

// MessageType identifies the kind of message in a received frame.
// It is the low 7 bits of the frame's type byte.
type MessageType byte

// Message-type codes emitted by the board.
const (
	// MsgBoardDump carries all 64 square codes
	MsgBoardDump MessageType = 0x06

	// MsgClock carries BCD clock data for both sides
	MsgClock MessageType = 0x0D

	// MsgFieldUpdate carries a single changed square
	MsgFieldUpdate MessageType = 0x0E

	// MsgEEMoves carries the EEPROM move history
	MsgEEMoves MessageType = 0x0F

	// MsgBusAddress carries the bus address text
	MsgBusAddress MessageType = 0x10

	// MsgSerialNumber carries the serial number text
	MsgSerialNumber MessageType = 0x11

	// MsgTrademark carries the trademark text
	MsgTrademark MessageType = 0x12

	// MsgVersion carries the two-byte firmware version
	MsgVersion MessageType = 0x13
)

// MessageTypeFromByte converts a type code into a MessageType.
// Returns false for codes that do not name a defined message type.
func MessageTypeFromByte(b byte) (MessageType, bool) {
	switch t := MessageType(b); t {
	case MsgBoardDump, MsgClock, MsgFieldUpdate, MsgEEMoves,
		MsgBusAddress, MsgSerialNumber, MsgTrademark, MsgVersion:
		return t, true
	default:
		return 0, false
	}
}

func (t MessageType) String() string {
	switch t {
	case MsgBoardDump:
		return "BoardDump"
	case MsgClock:
		return "Clock"
	case MsgFieldUpdate:
		return "FieldUpdate"
	case MsgEEMoves:
		return "EEMoves"
	case MsgBusAddress:
		return "BusAddress"
	case MsgSerialNumber:
		return "SerialNumber"
	case MsgTrademark:
		return "Trademark"
	case MsgVersion:
		return "Version"
	default:
		return "Unknown"
	}
}
