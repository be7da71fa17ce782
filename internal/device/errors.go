// internal/device/errors.go
package device

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Error is an I/O failure against the parameter device.
// It carries the underlying errno when the system reported one.
type Error struct {
	Op    string // "open" or "read"
	Path  string
	Block Selector // meaningful for Op == "read"
	Err   error
}

func (e *Error) Error() string {
	if e.Op == "read" {
		return fmt.Sprintf("device: read %s block from %s: %v", e.Block, e.Path, e.Err)
	}
	return fmt.Sprintf("device: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errno returns the system error number, or 0 if the failure was not a syscall error.
func (e *Error) Errno() unix.Errno {
	var errno unix.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return 0
}

// Code exposes the errno as a status code.
// Failures without an errno report EIO.
func (e *Error) Code() uint16 {
	if n := e.Errno(); n != 0 {
		return uint16(n)
	}
	return uint16(unix.EIO)
}
