// Package protocol implements the DGT electronic chessboard serial protocol.
//
// This package provides command encoding, frame recovery and response
// decoding for the update stream emitted by a DGT sensor board.
//
// # Protocol Overview
//
// Communication is half duplex over a serial line. The host sends single-byte
// commands; the board answers with bit-framed messages:
//
//	Message: [TYPE][LEN_HI][LEN_LO][PAYLOAD...]
//
// Where:
//   - TYPE has bit 7 set; the low 7 bits are the message-type code
//   - LEN_HI and LEN_LO have bit 7 clear; each carries 7 bits of a 14-bit
//     total length, high bits first
//   - the total length counts the 3 header bytes, so the payload is
//     total-3 bytes long
//
// Only the type byte ever has bit 7 set, which is what lets a reader regain
// frame alignment on a noisy line: FrameReader discards bytes until it sees
// a type byte and starts over whenever a length byte has bit 7 set.
//
// # Commands
//
// Commands are single bytes. Use the Command constants and write
// Command.Bytes to the transport:
//
//	port.Write(protocol.CmdRequestBoard.Bytes())
//
// # Responses
//
// Use FrameReader to pull frames off the wire and Decode to turn them into
// typed responses:
//
//	fr := protocol.NewFrameReader(port)
//	frame, err := fr.ReadFrame()
//	resp, err := protocol.Decode(frame)
//	switch r := resp.(type) {
//	case protocol.BoardDump:
//	    // r.Board holds all 64 squares
//	case protocol.FieldUpdate:
//	    // r.Square changed to r.Piece
//	}
//
// # Error Handling
//
// Decoding never panics. Every byte-to-enum conversion is total and every
// malformed payload produces a typed error (InvalidLengthError,
// InvalidPieceError, InvalidSquareError, UnknownMessageTypeError) that
// describes exactly what was wrong. A malformed message poisons only
// itself; the caller is expected to log it and keep reading.
package protocol
