package farm

import (
	"context"
	"log/slog"
	"time"
)

// DefaultTickInterval is one simulated day of wall time.
const DefaultTickInterval = 3 * time.Second

// PersistFunc receives a snapshot after each tick; errors are logged, not
// fatal.
type PersistFunc func(Snapshot) error

// Runner drives the farm with a fixed-interval ticker. One Runner per
// Farm; ticks and actions serialize on the Farm's own mutex.
type Runner struct {
	farm     *Farm
	interval time.Duration
	persist  PersistFunc
	logger   *slog.Logger
}

func NewRunner(f *Farm, interval time.Duration, persist PersistFunc) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Runner{
		farm:     f,
		interval: interval,
		persist:  persist,
		logger:   f.logger,
	}
}

// Run blocks until the context is cancelled, advancing one day per tick.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("runner started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("runner stopped")
			return
		case <-ticker.C:
			r.farm.Advance()
			if r.persist != nil {
				if err := r.persist(r.farm.Snapshot()); err != nil {
					r.logger.Error("snapshot persist failed", "error", err)
				}
			}
		}
	}
}
