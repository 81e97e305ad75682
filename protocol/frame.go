package protocol

import (
	"fmt"
	"io"
)

// Frame structure constants.
const (
	// HeaderSize is the number of header bytes in a frame:
	// TYPE(1) + LEN_HI(1) + LEN_LO(1). The length field counts these.
	HeaderSize = 3

	// typeBit marks the message-type byte; it is clear on every other
	// header byte, which is what makes resynchronization possible.
	typeBit = 0x80

	// dataMask extracts the 7 payload bits of a header byte.
	dataMask = 0x7F
)

// Frame is one complete type+length+payload unit recovered from the stream.
type Frame struct {
	// Type is the message-type code, already masked to the low 7 bits
	Type byte

	// Payload is the message body, total length minus the 3 header bytes
	Payload []byte
}

// FrameReader recovers discrete frames from a raw serial byte stream.
//
// The reader tolerates an unsynchronized stream: bytes without the type bit
// are discarded while scanning for a header, and a length byte with the
// type bit set restarts the scan with that byte as a candidate type byte.
// It never retries I/O; read failures from the underlying transport
// propagate to the caller.
type FrameReader struct {
	r   io.Reader
	buf [1]byte
}

// NewFrameReader creates a FrameReader over the given byte source.
// The reader issues single-byte blocking reads; wrap the source in a
// bufio.Reader if syscall-per-byte overhead matters.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r}
}

// ReadFrame blocks until one complete frame has been recovered.
//
// A declared total length smaller than the header size is a
// FrameLengthError: the stream offers no way to know how many bytes to
// skip, so it is not a resynchronization opportunity.
func (fr *FrameReader) ReadFrame() (*Frame, error) {
	b, err := fr.readByte()
	if err != nil {
		return nil, err
	}

	for {
		// Scan for a type byte, discarding garbage.
		for b&typeBit == 0 {
			if b, err = fr.readByte(); err != nil {
				return nil, err
			}
		}
		msgType := b & dataMask

		// Both length bytes must have the type bit clear; if not, the
		// byte just read may itself be the start of a frame.
		hi, err := fr.readByte()
		if err != nil {
			return nil, err
		}
		if hi&typeBit != 0 {
			b = hi
			continue
		}

		lo, err := fr.readByte()
		if err != nil {
			return nil, err
		}
		if lo&typeBit != 0 {
			b = lo
			continue
		}

		total := int(hi)<<7 | int(lo)
		if total < HeaderSize {
			return nil, &FrameLengthError{Total: total}
		}

		payload := make([]byte, total-HeaderSize)
		if _, err := io.ReadFull(fr.r, payload); err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}

		return &Frame{Type: msgType, Payload: payload}, nil
	}
}

// readByte reads exactly one byte from the underlying stream.
func (fr *FrameReader) readByte() (byte, error) {
	if _, err := io.ReadFull(fr.r, fr.buf[:]); err != nil {
		return 0, err
	}
	return fr.buf[0], nil
}
