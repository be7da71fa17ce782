// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device DeviceConfig  `yaml:"device"`
	Log    LogConfig     `yaml:"log"`
	Export *ExportConfig `yaml:"export"` // optional, opt-in
}

// ---- DEVICE ----

type DeviceConfig struct {
	Path            string `yaml:"path"`
	MaxRetry        *int   `yaml:"max_retry"` // nil => default
	RetryIntervalMs int    `yaml:"retry_interval_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// ---- EXPORT ----

type ExportConfig struct {
	Endpoint    string `yaml:"endpoint"`
	UnitID      uint8  `yaml:"unit_id"`
	BaseAddress uint16 `yaml:"base_address"`
	TimeoutMs   int    `yaml:"timeout_ms"`
	IntervalMs  int    `yaml:"interval_ms"`
	DeviceName  string `yaml:"device_name"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	Normalize(cfg)
	return cfg
}

// Load reads a yaml config file. Unknown keys are rejected.
// It does not validate or normalize.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}
