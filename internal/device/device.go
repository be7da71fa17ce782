// internal/device/device.go
package device

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// Handle is one open descriptor on the parameter device.
// Read follows read(2): one call, at most len(p) bytes.
type Handle interface {
	Read(p []byte) (int, error)
	Close() error
	Name() string
}

// Opener opens the parameter device read-only.
type Opener interface {
	Open(path string) (Handle, error)
}

// Unix opens the device through raw syscalls so the driver errno survives.
type Unix struct{}

func (Unix) Open(path string) (Handle, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	return &fdHandle{fd: fd, path: path}, nil
}

type fdHandle struct {
	fd   int
	path string
}

func (h *fdHandle) Read(p []byte) (int, error) {
	n, err := unix.Read(h.fd, p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (h *fdHandle) Close() error {
	if h.fd < 0 {
		return nil
	}
	err := unix.Close(h.fd)
	h.fd = -1
	return err
}

func (h *fdHandle) Name() string { return h.path }

// Open opens path read-only through o.
// Every failure comes back as *Error.
func Open(o Opener, path string) (Handle, error) {
	if o == nil {
		return nil, &Error{Op: "open", Path: path, Err: errors.New("no opener")}
	}
	h, err := o.Open(path)
	if err != nil {
		var de *Error
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	return h, nil
}

// ReadBlock selects block sel and reads it into buf in a single call.
//
// Protocol:
//
//	zero buf, write the selector name into its lead bytes, read(BlockSize)
//
// A short read is accepted once it returns a positive count.
// Zero bytes or an error is a failure.
func ReadBlock(h Handle, sel Selector, buf []byte) (int, error) {
	if len(buf) != BlockSize {
		return 0, fmt.Errorf("device: block buffer must be %d bytes, got %d", BlockSize, len(buf))
	}
	if !sel.Valid() {
		return 0, fmt.Errorf("device: unknown selector %d", int(sel))
	}

	clear(buf)
	copy(buf, sel.String())

	n, err := h.Read(buf)
	if err != nil {
		return 0, &Error{Op: "read", Path: h.Name(), Block: sel, Err: err}
	}
	if n <= 0 {
		return 0, &Error{Op: "read", Path: h.Name(), Block: sel, Err: io.ErrUnexpectedEOF}
	}
	return n, nil
}
