package farm

import (
	"fmt"
	"strconv"
	"strings"
)

type AreaUnit string

const (
	UnitAcres    AreaUnit = "acres"
	UnitHectares AreaUnit = "hectares"
	UnitYards    AreaUnit = "yards"
)

// FieldConfig is the long-lived field setup. It only changes through
// UpdateConfig and a full Restore; the tick loop treats it as read-only.
type FieldConfig struct {
	Crop    string   `json:"crop"`
	Soil    string   `json:"soil"`
	Area    float64  `json:"area"`
	Unit    AreaUnit `json:"unit"`
	Weather string   `json:"weather"`
}

func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Crop:    "wheat",
		Soil:    "alluvial",
		Area:    10,
		Unit:    UnitAcres,
		Weather: "sunny",
	}
}

// Selectable catalog entries. The market table covers more crops than the
// picker exposes; unknown crops still price through the default entry.
var (
	cropCatalog    = []string{"wheat", "rice", "maize", "cotton", "chilli", "tomato", "onion", "carrot"}
	soilCatalog    = []string{"alluvial", "black", "red", "sandy", "clay", "loamy"}
	weatherCatalog = []string{"sunny", "cloudy", "rainy", "cold"}
)

func Crops() []string    { return append([]string(nil), cropCatalog...) }
func Soils() []string    { return append([]string(nil), soilCatalog...) }
func Weathers() []string { return append([]string(nil), weatherCatalog...) }

func (c FieldConfig) Validate() error {
	if !contains(cropCatalog, c.Crop) {
		return fmt.Errorf("unknown crop: %s", c.Crop)
	}
	if !contains(soilCatalog, c.Soil) {
		return fmt.Errorf("unknown soil: %s", c.Soil)
	}
	if !contains(weatherCatalog, c.Weather) {
		return fmt.Errorf("unknown weather: %s", c.Weather)
	}
	switch c.Unit {
	case UnitAcres, UnitHectares, UnitYards:
	default:
		return fmt.Errorf("invalid area unit: %s", c.Unit)
	}
	if c.Area <= 0 {
		return fmt.Errorf("area must be positive, got %v", c.Area)
	}
	return nil
}

// applyConfigValue sets a single config field from its string form,
// validating against the catalogs. Returns the updated config.
func applyConfigValue(cfg FieldConfig, key, value string) (FieldConfig, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "crop":
		cfg.Crop = value
	case "soil":
		cfg.Soil = value
	case "weather":
		cfg.Weather = value
	case "unit":
		cfg.Unit = AreaUnit(value)
	case "area":
		area, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid area %q: %w", value, err)
		}
		cfg.Area = area
	default:
		return cfg, fmt.Errorf("unknown config key: %s", key)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
