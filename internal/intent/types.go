package intent

// Intent is a normalized control action derived from free-text input.
type Intent string

const (
	SowSeeds      Intent = "SOW_SEEDS"
	WaterField    Intent = "WATER_FIELD"
	AddFertilizer Intent = "ADD_FERTILIZER"
	Harvest       Intent = "HARVEST"
	PestControl   Intent = "PEST_CONTROL"
	SoilPrep      Intent = "SOIL_PREP"
	Unknown       Intent = "UNKNOWN"
)

type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangTelugu  Language = "te"
)

// Result pairs the resolved intent with the language the response should
// be spoken in. On a cross-language keyword hit, Lang is the keyword's
// source language, not the script the input was typed in.
type Result struct {
	Intent Intent   `json:"intent"`
	Lang   Language `json:"lang"`
}
