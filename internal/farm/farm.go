package farm

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Farm owns the whole mutable aggregate: field config, simulation state,
// activity log and transient effect flags. Every mutation happens under one
// mutex, so callers always observe a complete state transition.
type Farm struct {
	mu      sync.Mutex
	cfg     FieldConfig
	state   SimState
	log     []LogEntry
	effects map[Effect]bool
	timers  map[Effect]*time.Timer

	rng       Rand
	logger    *slog.Logger
	effectTTL func(Effect) time.Duration
	now       func() time.Time
}

// Options tunes a new Farm. Zero values fall back to sane defaults.
type Options struct {
	Seed   int64 // 0 means seed from the wall clock
	Rand   Rand  // overrides Seed when set
	Logger *slog.Logger
}

func New(cfg FieldConfig, opts Options) (*Farm, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = seededRNG(seed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Farm{
		cfg:       cfg,
		state:     NewSimState(),
		effects:   make(map[Effect]bool),
		timers:    make(map[Effect]*time.Timer),
		rng:       rng,
		logger:    logger,
		effectTTL: defaultEffectTTL,
		now:       time.Now,
	}, nil
}

// Config returns a copy of the current field configuration.
func (f *Farm) Config() FieldConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg
}

// State returns a copy of the current simulation state.
func (f *Farm) State() SimState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Log returns the activity log, newest first.
func (f *Farm) Log() []LogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]LogEntry(nil), f.log...)
}

// UpdateConfig mutates a single field-config value, validated against the
// crop/soil/weather catalogs. The only error-returning control operation.
func (f *Farm) UpdateConfig(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg, err := applyConfigValue(f.cfg, key, value)
	if err != nil {
		return err
	}
	f.cfg = cfg
	f.logger.Info("config updated", "key", key, "value", value)
	return nil
}

// ToggleRunning flips the pause switch and reports the new value.
func (f *Farm) ToggleRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Running = !f.state.Running
	f.logger.Info("simulation toggled", "running", f.state.Running)
	return f.state.Running
}

// Reset restores the defaults, clears the log and cancels pending effects.
// The field config is kept; only the run itself starts over.
func (f *Farm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = NewSimState()
	f.log = nil
	f.clearEffects()
	f.logger.Info("farm reset")
}

// Snapshot captures the persisted aggregate.
func (f *Farm) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Config: f.cfg,
		State:  f.state,
		Log:    append([]LogEntry(nil), f.log...),
	}
}

// Restore replaces the aggregate from a snapshot. Effect flags are
// transient and never restored.
func (f *Farm) Restore(snap Snapshot) error {
	if err := snap.Config.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg = snap.Config
	f.state = snap.State
	f.log = append([]LogEntry(nil), snap.Log...)
	f.refreshDerived()
	f.clearEffects()
	return nil
}

// prependLog adds an entry at the head of the log (newest-first ordering).
// Callers hold the mutex.
func (f *Farm) prependLog(action, message string) {
	entry := LogEntry{
		ID:        uuid.NewString(),
		Day:       f.state.Day,
		Action:    action,
		Message:   message,
		Timestamp: f.now().UTC(),
	}
	f.log = append([]LogEntry{entry}, f.log...)
}

// refreshDerived recomputes the flags that are pure functions of state.
// Callers hold the mutex.
func (f *Farm) refreshDerived() {
	f.state.Wilted = f.state.WaterLevel < 20
	f.state.Damaged = f.state.PestRisk > 80
}
