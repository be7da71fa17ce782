// internal/params/errors.go
package params

import "errors"

// Lookup failures. They are local and recoverable by the caller.
// Device failures surface as *device.Error.
var (
	ErrNotReady          = errors.New("params: store not initialized")
	ErrInvalidArgument   = errors.New("params: output buffer required")
	ErrInsufficientSpace = errors.New("params: output buffer too small")
	ErrUnsupported       = errors.New("params: unsupported parameter")
)
