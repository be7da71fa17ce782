// internal/config/normalize.go
package config

import (
	"time"

	"github.com/tamzrod/yl-params/internal/device"
	"github.com/tamzrod/yl-params/internal/export"
	"github.com/tamzrod/yl-params/internal/prober"
)

const (
	defaultExportTimeoutMs  = 2000
	defaultExportIntervalMs = 10000
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Device.Path == "" {
		cfg.Device.Path = device.DefaultPath
	}
	if cfg.Device.MaxRetry == nil {
		n := prober.DefaultMaxRetry
		cfg.Device.MaxRetry = &n
	}
	if cfg.Device.RetryIntervalMs == 0 {
		cfg.Device.RetryIntervalMs = int(prober.DefaultRetryInterval / time.Millisecond)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	// ------------------------------------------------------------
	// EXPORT BLOCK NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	e := cfg.Export
	if e == nil {
		return
	}

	if e.TimeoutMs == 0 {
		e.TimeoutMs = defaultExportTimeoutMs
	}
	if e.IntervalMs == 0 {
		e.IntervalMs = defaultExportIntervalMs
	}

	// Truncate device_name to what the block can hold (ASCII already validated)
	if len(e.DeviceName) > export.DeviceNameMaxChars {
		e.DeviceName = e.DeviceName[:export.DeviceNameMaxChars]
	}
}

// RetryInterval returns the configured prober sleep.
func (d DeviceConfig) RetryInterval() time.Duration {
	return time.Duration(d.RetryIntervalMs) * time.Millisecond
}

// Retries returns the configured prober retry count.
func (d DeviceConfig) Retries() int {
	if d.MaxRetry == nil {
		return prober.DefaultMaxRetry
	}
	return *d.MaxRetry
}
