package farm

import "math"

// Projection is a one-shot pre-season estimate: expected yield, a rough
// revenue figure and headline risk percentages. It reads only the field
// config plus the injected RNG, never the live simulation state.
type Projection struct {
	YieldQuintals int      `json:"yield_quintals"`
	Revenue       float64  `json:"revenue"`
	Area          float64  `json:"area"`
	Unit          AreaUnit `json:"unit"`
	PestRisk      int      `json:"pest_risk"`
	WeatherRisk   int      `json:"weather_risk"`
	Tips          []string `json:"tips"`
}

const (
	projectionYieldMin   = 60
	projectionYieldMax   = 95
	projectionPestMax    = 40
	projectionWeatherMax = 30
)

var projectionTips = []string{
	"Consider drip irrigation to save 30% more water",
	"Best planting window: next 2 weeks",
	"Add organic mulch to improve soil moisture",
}

// ProjectYield produces the estimate for the current config.
func (f *Farm) ProjectYield() Projection {
	f.mu.Lock()
	defer f.mu.Unlock()

	baseYield := projectionYieldMin + f.rng.IntN(projectionYieldMax-projectionYieldMin)
	return Projection{
		YieldQuintals: baseYield,
		Revenue:       math.Floor(float64(baseYield)*500 + f.rng.Float64()*5000),
		Area:          f.cfg.Area,
		Unit:          f.cfg.Unit,
		PestRisk:      f.rng.IntN(projectionPestMax),
		WeatherRisk:   f.rng.IntN(projectionWeatherMax),
		Tips:          append([]string(nil), projectionTips...),
	}
}
