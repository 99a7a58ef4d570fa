package farm

import "fmt"

// Environmental drift and growth tuning for one simulated day.
const (
	waterDecayPerDay  = 2
	soilDecayPerDay   = 0.5
	pestJitterMax     = 2   // pest risk gains U(0, pestJitterMax) per day
	baseGrowthPerDay  = 5
	wateredBonus      = 2   // extra growth when water is above wateredThreshold
	wateredThreshold  = 40
	droughtThreshold  = 10  // below this, growth halts entirely
	stageFullProgress = 100
)

// Advance runs one simulated day: environmental decay, growth, stage
// transition and derived-flag refresh. A paused farm is left untouched.
func (f *Farm) Advance() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.Running {
		return
	}
	s := &f.state

	s.WaterLevel = clampBounded(s.WaterLevel-waterDecayPerDay, 0, 100)
	s.SoilHealth = clampBounded(s.SoilHealth-soilDecayPerDay, 0, 100)
	s.PestRisk = clampBounded(s.PestRisk+f.rng.Float64()*pestJitterMax, 0, 100)

	var growth float64
	if s.Stage < StageMature {
		growth = baseGrowthPerDay
		if s.WaterLevel > wateredThreshold {
			growth += wateredBonus
		}
		if s.WaterLevel < droughtThreshold {
			growth = 0
		}
	}

	prevStage := s.Stage
	s.GrowthProgress += growth
	if s.GrowthProgress >= stageFullProgress {
		if s.Stage == StageSoilPrep {
			// An unsown field shows full potential but never germinates
			// on its own; SowSeeds is the only way out of stage 0.
			s.GrowthProgress = stageFullProgress
		} else if s.Stage < StageMature {
			s.Stage++
			s.GrowthProgress = 0
		}
	}

	f.refreshDerived()
	s.Day++

	if s.Stage > prevStage {
		f.prependLog("GROWTH", fmt.Sprintf("Crop entered stage %d (%s)", s.Stage, s.Stage))
		f.logger.Info("growth stage reached", "day", s.Day, "stage", s.Stage.String())
	} else {
		f.logger.Debug("day advanced",
			"day", s.Day,
			"water", s.WaterLevel,
			"soil", s.SoilHealth,
			"pest", s.PestRisk,
			"progress", s.GrowthProgress,
		)
	}
}
