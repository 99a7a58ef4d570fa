package farm

import "time"

type Stage int

const (
	StageSoilPrep Stage = iota
	StageSeeded
	StageSprout
	StageYoung
	StageMature
)

func (s Stage) String() string {
	switch s {
	case StageSoilPrep:
		return "soil_prep"
	case StageSeeded:
		return "seeded"
	case StageSprout:
		return "sprout"
	case StageYoung:
		return "young"
	case StageMature:
		return "mature"
	default:
		return "unknown"
	}
}

// cropHealthProxy feeds the harvest payout. Nothing mutates crop health
// yet, so it stays a constant.
const cropHealthProxy = 100.0

// SimState is the mutable simulation aggregate. Wilted and Damaged are
// derived from WaterLevel and PestRisk and recomputed after every mutation.
type SimState struct {
	Running        bool    `json:"running"`
	Day            int     `json:"day"`
	Stage          Stage   `json:"stage"`
	GrowthProgress float64 `json:"growth_progress"`
	WaterLevel     float64 `json:"water_level"`
	SoilHealth     float64 `json:"soil_health"`
	PestRisk       float64 `json:"pest_risk"`
	Funds          float64 `json:"funds"`
	Wilted         bool    `json:"wilted"`
	Damaged        bool    `json:"damaged"`
}

func NewSimState() SimState {
	return SimState{
		Running:        true,
		Day:            1,
		Stage:          StageSoilPrep,
		GrowthProgress: 0,
		WaterLevel:     60,
		SoilHealth:     70,
		PestRisk:       10,
		Funds:          10000,
	}
}

// LogEntry records one state-affecting event. The log is newest-first.
type LogEntry struct {
	ID        string    `json:"id"`
	Day       int       `json:"day"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is the persisted aggregate: everything needed to resume a farm.
type Snapshot struct {
	Config FieldConfig `json:"config"`
	State  SimState    `json:"state"`
	Log    []LogEntry  `json:"log,omitempty"`
}

func clampBounded(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
