package farm

import "time"

// Effect names a transient visual cue for presentation layers. The flags
// carry no simulation semantics; the state machine never reads them.
type Effect string

const (
	EffectWatering        Effect = "watering"
	EffectFertilizing     Effect = "fertilizing"
	EffectPestControlling Effect = "pest_controlling"
	EffectHarvesting      Effect = "harvesting"
	EffectSowing          Effect = "sowing"
	EffectTilling         Effect = "tilling"
)

// EffectFlags is the snapshot shape handed to observers.
type EffectFlags struct {
	Watering        bool `json:"watering"`
	Fertilizing     bool `json:"fertilizing"`
	PestControlling bool `json:"pest_controlling"`
	Harvesting      bool `json:"harvesting"`
	Sowing          bool `json:"sowing"`
	Tilling         bool `json:"tilling"`
}

func defaultEffectTTL(e Effect) time.Duration {
	if e == EffectWatering {
		return 4 * time.Second
	}
	return 3 * time.Second
}

// Effects returns the current transient flags.
func (f *Farm) Effects() EffectFlags {
	f.mu.Lock()
	defer f.mu.Unlock()
	return EffectFlags{
		Watering:        f.effects[EffectWatering],
		Fertilizing:     f.effects[EffectFertilizing],
		PestControlling: f.effects[EffectPestControlling],
		Harvesting:      f.effects[EffectHarvesting],
		Sowing:          f.effects[EffectSowing],
		Tilling:         f.effects[EffectTilling],
	}
}

// setEffect raises a flag and (re)arms its clear timer. Repeating an
// action resets the timer instead of stacking a second one. Callers hold
// the mutex; the deferred clear re-acquires it.
func (f *Farm) setEffect(e Effect) {
	f.effects[e] = true
	if prev, ok := f.timers[e]; ok {
		prev.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(f.effectTTL(e), func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.timers[e] == t {
			f.effects[e] = false
			delete(f.timers, e)
		}
	})
	f.timers[e] = t
}

// clearEffects drops all flags and cancels pending timers. Callers hold
// the mutex.
func (f *Farm) clearEffects() {
	for e, t := range f.timers {
		t.Stop()
		delete(f.timers, e)
	}
	for e := range f.effects {
		delete(f.effects, e)
	}
}
