package protocol

// Command is a single-byte instruction sent from the host to the board.
type Command byte

// Command codes understood by the board.
const (
	// CmdReset resets the board to its power-on state
	CmdReset Command = 0x40

	// CmdRequestClock requests the current clock data
	CmdRequestClock Command = 0x41

	// CmdRequestBoard requests a complete dump of all 64 squares
	CmdRequestBoard Command = 0x42

	// CmdEnableUpdate enables spontaneous field/clock update messages
	CmdEnableUpdate Command = 0x43

	// CmdRequestUpdate requests board-change update mode
	CmdRequestUpdate Command = 0x44

	// CmdRequestSerialNumber requests the board serial number
	CmdRequestSerialNumber Command = 0x45

	// CmdRequestBusAddress requests the board bus address
	CmdRequestBusAddress Command = 0x46

	// CmdRequestTrademark requests the trademark text
	CmdRequestTrademark Command = 0x47

	// CmdRequestEEMoves requests the EEPROM move history
	CmdRequestEEMoves Command = 0x49

	// CmdRequestNiceUpdate requests the "nice" update mode
	CmdRequestNiceUpdate Command = 0x4B

	// CmdRequestVersion requests the firmware version
	CmdRequestVersion Command = 0x4D
)

// CommandFromByte converts a wire byte into a Command.
// Returns false for bytes that do not name a defined command.
func CommandFromByte(b byte) (Command, bool) {
	switch c := Command(b); c {
	case CmdReset, CmdRequestClock, CmdRequestBoard, CmdEnableUpdate,
		CmdRequestUpdate, CmdRequestSerialNumber, CmdRequestBusAddress,
		CmdRequestTrademark, CmdRequestEEMoves, CmdRequestNiceUpdate,
		CmdRequestVersion:
		return c, true
	default:
		return 0, false
	}
}

// Byte returns the wire encoding of the command.
func (c Command) Byte() byte {
	return byte(c)
}

// Bytes returns the wire encoding as a one-byte slice ready to write.
func (c Command) Bytes() []byte {
	return []byte{byte(c)}
}

func (c Command) String() string {
	switch c {
	case CmdReset:
		return "Reset"
	case CmdRequestClock:
		return "RequestClock"
	case CmdRequestBoard:
		return "RequestBoard"
	case CmdEnableUpdate:
		return "EnableUpdate"
	case CmdRequestUpdate:
		return "RequestUpdate"
	case CmdRequestSerialNumber:
		return "RequestSerialNumber"
	case CmdRequestBusAddress:
		return "RequestBusAddress"
	case CmdRequestTrademark:
		return "RequestTrademark"
	case CmdRequestEEMoves:
		return "RequestEEMoves"
	case CmdRequestNiceUpdate:
		return "RequestNiceUpdate"
	case CmdRequestVersion:
		return "RequestVersion"
	default:
		return "UnknownCommand"
	}
}
