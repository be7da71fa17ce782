// internal/prober/prober.go
package prober

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tamzrod/yl-params/internal/device"
)

// Defaults used when the configuration leaves the retry policy unset.
const (
	DefaultMaxRetry      = 5
	DefaultRetryInterval = time.Second
)

// Config is the minimal runtime config the prober needs.
type Config struct {
	Path          string
	MaxRetry      int // attempts = MaxRetry + 1
	RetryInterval time.Duration

	// Sleep replaces time.Sleep between attempts (tests).
	Sleep func(time.Duration)
}

// Prober waits for the parameter device to answer reads.
// It holds no descriptor between calls.
type Prober struct {
	cfg    Config
	opener device.Opener
	log    *slog.Logger
}

// New creates a prober with immutable config.
func New(cfg Config, opener device.Opener, log *slog.Logger) (*Prober, error) {
	if cfg.Path == "" {
		return nil, errors.New("prober: device path required")
	}
	if cfg.MaxRetry < 0 {
		return nil, errors.New("prober: max retry must be >= 0")
	}
	if cfg.RetryInterval < 0 {
		return nil, errors.New("prober: retry interval must be >= 0")
	}
	if opener == nil {
		return nil, errors.New("prober: opener required")
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if log == nil {
		log = slog.Default()
	}
	return &Prober{cfg: cfg, opener: opener, log: log.With("component", "prober")}, nil
}

// WaitReady reads one DEVICE block as a liveness probe.
//
// An open failure returns at once. Read failures are retried up to MaxRetry
// times with RetryInterval between attempts; the last failure is returned.
// The block contents are discarded.
func (p *Prober) WaitReady() error {
	h, err := device.Open(p.opener, p.cfg.Path)
	if err != nil {
		p.log.Error("failed to open parameter device", "path", p.cfg.Path, "err", err)
		return err
	}
	defer h.Close()

	buf := make([]byte, device.BlockSize)
	attempts := p.cfg.MaxRetry + 1

	for i := 0; i < attempts; i++ {
		if _, err = device.ReadBlock(h, device.Device, buf); err == nil {
			p.log.Info("parameter device ready", "path", p.cfg.Path, "attempt", i+1)
			return nil
		}

		p.log.Warn("parameter device read failed, retrying",
			"path", p.cfg.Path,
			"attempt", i+1,
			"of", attempts,
			"err", err,
		)

		if i < attempts-1 {
			p.cfg.Sleep(p.cfg.RetryInterval)
		}
	}

	return err
}
