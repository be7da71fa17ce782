// internal/export/runner.go
package export

import (
	"context"
	"time"
)

// Run exports once immediately, then on every tick until ctx is done.
// Init failures are retried on the next tick; a successful Init is never repeated.
func (e *Exporter) Run(ctx context.Context) {
	e.tick()

	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *Exporter) tick() {
	s, err := e.ExportOnce()
	if err != nil {
		e.log.Error("export write failed", "err", err)
		return
	}
	e.log.Debug("export block written", "health", s.Health, "code", s.LastErrorCode)
}
