package serialport

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// fakeLine scripts the underlying serial library's read behavior,
// including the zero-byte reads it produces on timeout.
type fakeLine struct {
	reads  [][]byte // one entry per Read call; nil means a timed-out read
	writes bytes.Buffer
	closed bool
}

func (f *fakeLine) Read(p []byte) (int, error) {
	if len(f.reads) == 0 {
		return 0, io.EOF
	}
	chunk := f.reads[0]
	f.reads = f.reads[1:]
	return copy(p, chunk), nil
}

func (f *fakeLine) Write(p []byte) (int, error) {
	return f.writes.Write(p)
}

func (f *fakeLine) Close() error {
	f.closed = true
	return nil
}

func TestOpenRequiresDevice(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Error("Open with empty device path succeeded, want error")
	}
}

func TestReadTimeoutBecomesError(t *testing.T) {
	port := &Port{inner: &fakeLine{reads: [][]byte{nil, {0x42}}}}

	buf := make([]byte, 1)
	_, err := port.Read(buf)
	if !errors.Is(err, ErrReadTimeout) {
		t.Fatalf("timed-out read error = %v, want ErrReadTimeout", err)
	}

	n, err := port.Read(buf)
	if err != nil || n != 1 || buf[0] != 0x42 {
		t.Errorf("second read = %d bytes, %v; want the queued byte", n, err)
	}
}

func TestWriteAndClosePassThrough(t *testing.T) {
	line := &fakeLine{}
	port := &Port{inner: line}

	if _, err := port.Write([]byte{0x40}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := line.writes.Bytes(); len(got) != 1 || got[0] != 0x40 {
		t.Errorf("line received %v, want [0x40]", got)
	}

	if err := port.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !line.closed {
		t.Error("Close did not reach the underlying port")
	}
}
