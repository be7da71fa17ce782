// internal/params/store.go
package params

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/tamzrod/yl-params/internal/device"
	"github.com/tamzrod/yl-params/internal/layout"
)

// Prober gates initialization on device readiness.
type Prober interface {
	WaitReady() error
}

// Config is the minimal runtime config the store needs.
type Config struct {
	Path string
}

// Records is the record set read from the device.
type Records struct {
	Device        layout.DeviceInfo
	Configuration layout.ConfigurationInfo
	Productline   layout.ProductlineInfo
}

// Store owns the factory parameter records.
//
// It is populated once by Init and never mutated afterward.
// Construct one per process and share it by reference.
type Store struct {
	cfg    Config
	opener device.Opener
	prober Prober
	log    *slog.Logger

	initMu sync.Mutex // serializes Init; never held by lookups

	mu          sync.RWMutex // guards rec and initialized
	rec         Records
	initialized bool
}

// New creates an uninitialized store.
func New(cfg Config, opener device.Opener, prober Prober, log *slog.Logger) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("params: device path required")
	}
	if opener == nil {
		return nil, errors.New("params: opener required")
	}
	if prober == nil {
		return nil, errors.New("params: prober required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		cfg:    cfg,
		opener: opener,
		prober: prober,
		log:    log.With("component", "params"),
	}, nil
}

// Initialized reports whether Init has completed successfully.
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Init waits for the device and reads the DEVICE, CONFIGURATION and
// PRODUCTLINE blocks, in that order, one read each.
//
// Idempotent: once successful, later calls return nil without I/O.
// Any failure aborts the whole sequence and leaves the store not ready.
// Lookups made while Init is in progress fail with ErrNotReady.
func (s *Store) Init() error {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.Initialized() {
		return nil
	}

	if err := s.prober.WaitReady(); err != nil {
		s.log.Error("parameter device failed to become ready", "err", err)
		return err
	}

	rec, err := s.load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.rec = rec
	s.initialized = true
	s.mu.Unlock()

	s.log.Debug("parameter records loaded", "serial", rec.Productline.Serial())
	return nil
}

// load reads the three blocks into a fresh record set.
func (s *Store) load() (Records, error) {
	var rec Records

	h, err := device.Open(s.opener, s.cfg.Path)
	if err != nil {
		s.log.Error("failed to open parameter device", "path", s.cfg.Path, "err", err)
		return rec, err
	}
	defer h.Close()

	// the device streams blocks in call order: keep this sequence
	steps := []struct {
		label string
		sel   device.Selector
		store func(blk []byte) error
	}{
		{"device", device.Device, func(blk []byte) (err error) {
			rec.Device, err = layout.Decode[layout.DeviceInfo](blk)
			return err
		}},
		{"config", device.Configuration, func(blk []byte) (err error) {
			rec.Configuration, err = layout.Decode[layout.ConfigurationInfo](blk)
			return err
		}},
		{"product", device.Productline, func(blk []byte) (err error) {
			rec.Productline, err = layout.Decode[layout.ProductlineInfo](blk)
			return err
		}},
	}

	blk := make([]byte, device.BlockSize)
	for _, st := range steps {
		if _, err := device.ReadBlock(h, st.sel, blk); err != nil {
			s.log.Error("failed to read "+st.label+" block", "err", err)
			return Records{}, err
		}
		if err := st.store(blk); err != nil {
			s.log.Error("failed to decode "+st.label+" block", "err", err)
			return Records{}, err
		}
	}
	return rec, nil
}

// Get copies parameter id into out.
//
// Exactly id.Size() bytes are written; the rest of out is untouched.
func (s *Store) Get(id ParamID, out []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return ErrNotReady
	}
	if out == nil {
		return ErrInvalidArgument
	}

	var field []byte
	switch id {
	case WLANMAC:
		field = s.rec.Productline.WIFIMAC[:]
	case BTMAC:
		field = s.rec.Productline.BTMAC[:]
	case IMEI0:
		field = s.rec.Productline.IMEI1[:]
	case IMEI1:
		field = s.rec.Productline.IMEI2[:]
	default:
		s.log.Info("invalid parameter requested", "param", int(id))
		return ErrUnsupported
	}

	if len(out) < len(field) {
		return ErrInsufficientSpace
	}
	copy(out, field)
	return nil
}

// Lookup returns a fresh copy of parameter id.
func (s *Store) Lookup(id ParamID) ([]byte, error) {
	n := id.Size()
	if n == 0 {
		n = 1
	}
	out := make([]byte, n)
	if err := s.Get(id, out); err != nil {
		return nil, err
	}
	return out[:id.Size()], nil
}

// Records returns a copy of the loaded record set.
func (s *Store) Records() (Records, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return Records{}, ErrNotReady
	}
	return s.rec, nil
}
