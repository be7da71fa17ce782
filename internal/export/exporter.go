// internal/export/exporter.go
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tamzrod/yl-params/internal/params"
)

// Source is the parameter store as seen by the exporter.
type Source interface {
	Init() error
	Get(id params.ParamID, out []byte) error
}

// registerWriter is the exact contract the exporter uses.
type registerWriter interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// Config is the minimal runtime config the exporter needs.
type Config struct {
	UnitID      uint8
	BaseAddress uint16
	Interval    time.Duration
	DeviceName  string
}

// Exporter publishes the factory parameters into a register block.
type Exporter struct {
	cfg Config
	src Source
	cli registerWriter
	log *slog.Logger

	needFull bool
	last     Snapshot
}

// New creates an exporter with immutable config.
func New(cfg Config, src Source, cli registerWriter, log *slog.Logger) (*Exporter, error) {
	if src == nil {
		return nil, errors.New("export: source required")
	}
	if cli == nil {
		return nil, errors.New("export: register writer required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("export: interval must be > 0")
	}
	if uint32(cfg.BaseAddress)+SlotsPerBlock-1 > 0xFFFF {
		return nil, fmt.Errorf("export: base address %d overflows register space", cfg.BaseAddress)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{
		cfg:      cfg,
		src:      src,
		cli:      cli,
		log:      log.With("component", "export"),
		needFull: true, // full re-assert on first write
		last:     Snapshot{Health: HealthUnknown},
	}, nil
}

// Collect initializes the source if needed and reads every parameter.
// All-or-nothing: any failure yields an error snapshot without parameters.
func (e *Exporter) Collect() Snapshot {
	if err := e.src.Init(); err != nil {
		return errorSnapshot(err)
	}

	var s Snapshot
	fields := []struct {
		id  params.ParamID
		dst []byte
	}{
		{params.WLANMAC, s.WLANMAC[:]},
		{params.BTMAC, s.BTMAC[:]},
		{params.IMEI0, s.IMEI0[:]},
		{params.IMEI1, s.IMEI1[:]},
	}
	for _, f := range fields {
		if err := e.src.Get(f.id, f.dst); err != nil {
			return errorSnapshot(fmt.Errorf("export: get %s: %w", f.id, err))
		}
	}

	s.Health = HealthOK
	return s
}

func errorSnapshot(err error) Snapshot {
	return Snapshot{Health: HealthError, LastErrorCode: errorCode(err)}
}

// ExportOnce collects a snapshot and writes it.
func (e *Exporter) ExportOnce() (Snapshot, error) {
	s := e.Collect()
	if s.Health != HealthOK {
		e.log.Warn("parameter collection failed", "code", s.LastErrorCode)
	}
	return s, e.Write(s)
}

// Write delivers a snapshot into the register block.
//
// The full block is written on first use, after any failure, and whenever
// the parameter slots change. Otherwise only changed status slots are written.
func (e *Exporter) Write(s Snapshot) error {
	base := e.cfg.BaseAddress
	unitID := e.cfg.UnitID

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if e.needFull || !e.last.sameParams(s) {
		regs := Encode(s, e.cfg.DeviceName)

		if err := e.cli.WriteRegisters(unitID, base, regs); err != nil {
			e.needFull = true
			return fmt.Errorf("export: full block write failed: %w", err)
		}

		e.needFull = false
		e.last = s
		return nil
	}

	var errs []string

	// Slot 0: health_code
	if e.last.Health != s.Health {
		if err := e.cli.WriteRegisters(unitID, base+SlotHealthCode, []uint16{s.Health}); err != nil {
			errs = append(errs, fmt.Sprintf("slot0 health write failed: %v", err))
		} else {
			e.last.Health = s.Health
		}
	}

	// Slot 1: last_error_code
	if e.last.LastErrorCode != s.LastErrorCode {
		if err := e.cli.WriteRegisters(unitID, base+SlotLastErrorCode, []uint16{s.LastErrorCode}); err != nil {
			errs = append(errs, fmt.Sprintf("slot1 last_error write failed: %v", err))
		} else {
			e.last.LastErrorCode = s.LastErrorCode
		}
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next success.
		e.needFull = true
		return errors.New("export: " + strings.Join(errs, " | "))
	}

	return nil
}
