package farm

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunnerAdvancesAndPersists(t *testing.T) {
	f := newTestFarm(t, fixedRand{})
	var saves atomic.Int32

	runner := NewRunner(f, 10*time.Millisecond, func(Snapshot) error {
		saves.Add(1)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()
	runner.Run(ctx)

	if day := f.State().Day; day < 2 {
		t.Fatalf("runner never advanced, day = %d", day)
	}
	if saves.Load() == 0 {
		t.Fatalf("runner never persisted a snapshot")
	}
}

func TestRunnerDefaultsInterval(t *testing.T) {
	f := newTestFarm(t, fixedRand{})
	runner := NewRunner(f, 0, nil)
	if runner.interval != DefaultTickInterval {
		t.Fatalf("interval = %v, want %v", runner.interval, DefaultTickInterval)
	}
}
