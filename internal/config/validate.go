// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/yl-params/internal/export"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// DEVICE / RETRY POLICY
	// ------------------------------------------------------------

	if cfg.Device.MaxRetry != nil && *cfg.Device.MaxRetry < 0 {
		return fmt.Errorf("device.max_retry must be >= 0, got %d", *cfg.Device.MaxRetry)
	}
	if cfg.Device.RetryIntervalMs < 0 {
		return fmt.Errorf("device.retry_interval_ms must be >= 0, got %d", cfg.Device.RetryIntervalMs)
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", cfg.Log.Level)
	}

	// ------------------------------------------------------------
	// EXPORT BLOCK (OPT-IN)
	// ------------------------------------------------------------

	e := cfg.Export
	if e == nil {
		return nil
	}

	if e.Endpoint == "" {
		return fmt.Errorf("export: endpoint required")
	}
	if e.TimeoutMs < 0 {
		return fmt.Errorf("export: timeout_ms must be >= 0, got %d", e.TimeoutMs)
	}
	if e.IntervalMs < 0 {
		return fmt.Errorf("export: interval_ms must be >= 0, got %d", e.IntervalMs)
	}

	// device_name sanity (ASCII only)
	for i := 0; i < len(e.DeviceName); i++ {
		if e.DeviceName[i] > 0x7F {
			return fmt.Errorf("export: device_name must contain ASCII characters only")
		}
	}

	// the whole block must fit in the 16-bit register space
	end := uint32(e.BaseAddress) + export.SlotsPerBlock - 1
	if end > 0xFFFF {
		return fmt.Errorf(
			"export: base_address %d leaves no room for %d registers",
			e.BaseAddress,
			export.SlotsPerBlock,
		)
	}

	return nil
}
