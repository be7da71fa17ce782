// internal/export/errcode.go
package export

import (
	"errors"

	"github.com/tamzrod/yl-params/internal/params"
)

// Codes for lookup failures. Device failures report their errno instead.
const (
	CodeGeneric          uint16 = 1
	CodeNotReady         uint16 = 0x0100
	CodeInvalidArgument  uint16 = 0x0101
	CodeInsufficientSize uint16 = 0x0102
	CodeUnsupported      uint16 = 0x0103
)

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns CodeGeneric.
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	switch {
	case errors.Is(err, params.ErrNotReady):
		return CodeNotReady
	case errors.Is(err, params.ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, params.ErrInsufficientSpace):
		return CodeInsufficientSize
	case errors.Is(err, params.ErrUnsupported):
		return CodeUnsupported
	}

	return CodeGeneric
}
