// internal/device/device_test.go
package device

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"golang.org/x/sys/unix"
)

// ---- fake handle ----

type recordingHandle struct {
	seen   []byte
	fill   []byte
	n      int
	err    error
	closed bool
}

func (h *recordingHandle) Read(p []byte) (int, error) {
	h.seen = append([]byte(nil), p...)
	if h.err != nil {
		return 0, h.err
	}
	copy(p, h.fill)
	return h.n, nil
}

func (h *recordingHandle) Close() error { h.closed = true; return nil }
func (h *recordingHandle) Name() string { return "/dev/test" }

type failingOpener struct{ err error }

func (o failingOpener) Open(string) (Handle, error) { return nil, o.err }

// ---- tests ----

func TestSelectorNames(t *testing.T) {
	tests := []struct {
		sel  Selector
		want string
	}{
		{Device, "DEVICE"},
		{Configuration, "CONFIGURATION"},
		{Productline, "PRODUCTLINE"},
		{Touchscreen3, "TOUCHSCREEN3"},
		{FetchPasswd, "FETCH_PASSWD"},
		{VirtOSPasswd, "VIRTOS_PASSWD"},
	}
	for _, tt := range tests {
		if got := tt.sel.String(); got != tt.want {
			t.Errorf("Selector(%d).String() = %q, want %q", tt.sel, got, tt.want)
		}
	}

	if len(Selectors()) != 21 {
		t.Fatalf("expected 21 selectors, got %d", len(Selectors()))
	}
	if Selector(21).Valid() || Selector(-1).Valid() {
		t.Fatalf("out of range selectors must be invalid")
	}
	if Selector(99).String() != "" {
		t.Fatalf("unknown selector must have empty name")
	}
}

func TestReadBlock_WritesSelectorIntoZeroedBuffer(t *testing.T) {
	h := &recordingHandle{n: BlockSize}

	buf := bytes.Repeat([]byte{0xff}, BlockSize)
	if _, err := ReadBlock(h, Configuration, buf); err != nil {
		t.Fatalf("ReadBlock err=%v", err)
	}

	name := "CONFIGURATION"
	if string(h.seen[:len(name)]) != name {
		t.Fatalf("selector not written: %q", h.seen[:len(name)])
	}
	for i := len(name); i < BlockSize; i++ {
		if h.seen[i] != 0 {
			t.Fatalf("byte %d not zeroed before read: %#x", i, h.seen[i])
		}
	}
}

func TestReadBlock_ShortReadAccepted(t *testing.T) {
	h := &recordingHandle{n: 17}

	n, err := ReadBlock(h, Productline, make([]byte, BlockSize))
	if err != nil {
		t.Fatalf("short read must be accepted, err=%v", err)
	}
	if n != 17 {
		t.Fatalf("n=%d want 17", n)
	}
}

func TestReadBlock_ZeroReadFails(t *testing.T) {
	h := &recordingHandle{n: 0}

	_, err := ReadBlock(h, Device, make([]byte, BlockSize))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}

	var de *Error
	if !errors.As(err, &de) || de.Block != Device || de.Op != "read" {
		t.Fatalf("expected read *Error for DEVICE, got %#v", err)
	}
	if de.Code() != uint16(unix.EIO) {
		t.Fatalf("code=%d want EIO", de.Code())
	}
}

func TestReadBlock_ErrnoPreserved(t *testing.T) {
	h := &recordingHandle{err: unix.EAGAIN}

	_, err := ReadBlock(h, Device, make([]byte, BlockSize))
	if !errors.Is(err, unix.EAGAIN) {
		t.Fatalf("expected EAGAIN, got %v", err)
	}

	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if de.Errno() != unix.EAGAIN || de.Code() != uint16(unix.EAGAIN) {
		t.Fatalf("errno=%v code=%d", de.Errno(), de.Code())
	}
}

func TestReadBlock_RejectsWrongBuffer(t *testing.T) {
	h := &recordingHandle{n: BlockSize}

	if _, err := ReadBlock(h, Device, make([]byte, BlockSize-1)); err == nil {
		t.Fatalf("expected error for undersized buffer")
	}
	if _, err := ReadBlock(h, Selector(40), make([]byte, BlockSize)); err == nil {
		t.Fatalf("expected error for unknown selector")
	}
	if h.seen != nil {
		t.Fatalf("no read should be issued on argument errors")
	}
}

func TestOpen_WrapsErrno(t *testing.T) {
	_, err := Open(failingOpener{err: unix.ENOENT}, "/dev/missing")

	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if de.Op != "open" || de.Path != "/dev/missing" {
		t.Fatalf("unexpected error fields: %#v", de)
	}
	if !errors.Is(err, unix.ENOENT) {
		t.Fatalf("expected ENOENT in chain, got %v", err)
	}
}

func TestOpen_NilOpener(t *testing.T) {
	if _, err := Open(nil, DefaultPath); err == nil {
		t.Fatalf("expected error for nil opener")
	}
}

func TestUnixOpen_MissingPath(t *testing.T) {
	_, err := Open(Unix{}, "/nonexistent/yl_params")
	if !errors.Is(err, unix.ENOENT) {
		t.Fatalf("expected ENOENT, got %v", err)
	}
}

func TestUnixHandle_ReadsRegularFile(t *testing.T) {
	path := t.TempDir() + "/params"
	data := bytes.Repeat([]byte{0xab}, BlockSize)
	if err := writeFile(path, data); err != nil {
		t.Fatalf("write: %v", err)
	}

	h, err := Open(Unix{}, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	buf := make([]byte, BlockSize)
	n, err := ReadBlock(h, Device, buf)
	if err != nil {
		t.Fatalf("ReadBlock err=%v", err)
	}
	if n != BlockSize || !bytes.Equal(buf, data) {
		t.Fatalf("unexpected read n=%d", n)
	}

	// file exhausted: second read returns 0 and fails
	if _, err := ReadBlock(h, Configuration, buf); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF at end of file, got %v", err)
	}
}

func writeFile(path string, data []byte) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	_, err = unix.Write(fd, data)
	return err
}
