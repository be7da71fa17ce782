// internal/device/devicetest/fake.go

// Package devicetest provides a scripted parameter device for tests.
package devicetest

import (
	"errors"
	"strings"
	"sync"

	"github.com/tamzrod/yl-params/internal/device"
)

// ErrZeroRead scripts a read that returns 0 bytes and no error.
var ErrZeroRead = errors.New("devicetest: zero read")

// Fake is an in-memory parameter device.
//
// Reads consume Script in order: a nil entry (or an exhausted script) serves
// the selected block from Blocks, ErrZeroRead returns 0, any other error is
// returned as-is. A block shorter than BlockSize produces a short read.
type Fake struct {
	mu sync.Mutex

	OpenErr error
	Blocks  map[device.Selector][]byte
	Script  []error

	Opens    int
	Reads    int
	Closes   int
	Selected []device.Selector
}

// New returns a Fake serving the given blocks.
func New(blocks map[device.Selector][]byte) *Fake {
	return &Fake{Blocks: blocks}
}

// Open implements device.Opener.
func (f *Fake) Open(path string) (device.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Opens++
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return &handle{f: f, path: path}, nil
}

// IO returns the total number of opens and reads performed.
func (f *Fake) IO() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Opens + f.Reads
}

// Balanced reports whether every successful open was closed.
func (f *Fake) Balanced() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	opened := f.Opens
	if f.OpenErr != nil {
		opened = 0
	}
	return opened == f.Closes
}

type handle struct {
	f      *Fake
	path   string
	closed bool
}

func (h *handle) Name() string { return h.path }

func (h *handle) Close() error {
	h.f.mu.Lock()
	defer h.f.mu.Unlock()
	if h.closed {
		return errors.New("devicetest: double close")
	}
	h.closed = true
	h.f.Closes++
	return nil
}

func (h *handle) Read(p []byte) (int, error) {
	f := h.f
	f.mu.Lock()
	defer f.mu.Unlock()

	if h.closed {
		return 0, errors.New("devicetest: read after close")
	}

	idx := f.Reads
	f.Reads++

	sel, ok := selected(p)
	if ok {
		f.Selected = append(f.Selected, sel)
	}

	if idx < len(f.Script) && f.Script[idx] != nil {
		if errors.Is(f.Script[idx], ErrZeroRead) {
			return 0, nil
		}
		return 0, f.Script[idx]
	}

	data, found := f.Blocks[sel]
	if !ok || !found {
		// unknown block: the driver echoes the selector buffer
		return len(p), nil
	}
	return copy(p, data), nil
}

// selected matches the longest selector name prefixing p.
func selected(p []byte) (device.Selector, bool) {
	var (
		best    device.Selector
		bestLen int
	)
	for _, s := range device.Selectors() {
		name := s.String()
		if len(name) > bestLen && strings.HasPrefix(string(p), name) {
			best, bestLen = s, len(name)
		}
	}
	return best, bestLen > 0
}
