package farm

type Trend string

const (
	TrendUp       Trend = "up"
	TrendDown     Trend = "down"
	TrendStable   Trend = "stable"
	TrendVolatile Trend = "volatile"
)

// MarketEntry is static price/cost/trend data for one crop. The table is
// compiled in and read-only at runtime.
type MarketEntry struct {
	PricePerQuintal float64 `json:"price_per_quintal"`
	CostPerAcre     float64 `json:"cost_per_acre"`
	Trend           Trend   `json:"trend"`
}

type MarketTable map[string]MarketEntry

// defaultMarketEntry prices crops missing from the table. Unknown crops
// never fail a calculation.
var defaultMarketEntry = MarketEntry{PricePerQuintal: 2000, CostPerAcre: 5000, Trend: TrendStable}

// DefaultMarket returns the built-in market table.
func DefaultMarket() MarketTable {
	return MarketTable{
		// Cereals & fiber
		"wheat":     {PricePerQuintal: 2200, CostPerAcre: 6000, Trend: TrendUp},
		"rice":      {PricePerQuintal: 2500, CostPerAcre: 8000, Trend: TrendStable},
		"maize":     {PricePerQuintal: 1900, CostPerAcre: 5500, Trend: TrendDown},
		"cotton":    {PricePerQuintal: 6000, CostPerAcre: 9000, Trend: TrendUp},
		"sugarcane": {PricePerQuintal: 350, CostPerAcre: 15000, Trend: TrendStable},

		// Vegetables
		"tomato":       {PricePerQuintal: 1500, CostPerAcre: 12000, Trend: TrendVolatile},
		"onion":        {PricePerQuintal: 1800, CostPerAcre: 10000, Trend: TrendUp},
		"potato":       {PricePerQuintal: 1200, CostPerAcre: 8000, Trend: TrendStable},
		"carrot":       {PricePerQuintal: 3500, CostPerAcre: 11000, Trend: TrendUp},
		"brinjal":      {PricePerQuintal: 2100, CostPerAcre: 9000, Trend: TrendStable},
		"okra":         {PricePerQuintal: 2800, CostPerAcre: 8500, Trend: TrendUp},
		"cabbage":      {PricePerQuintal: 1400, CostPerAcre: 9500, Trend: TrendDown},
		"cauliflower":  {PricePerQuintal: 1600, CostPerAcre: 10000, Trend: TrendStable},
		"spinach":      {PricePerQuintal: 1200, CostPerAcre: 5000, Trend: TrendStable},
		"bitter_gourd": {PricePerQuintal: 3200, CostPerAcre: 11000, Trend: TrendUp},
		"bottle_gourd": {PricePerQuintal: 1100, CostPerAcre: 6000, Trend: TrendDown},

		// Spices
		"chilli":       {PricePerQuintal: 8000, CostPerAcre: 14000, Trend: TrendUp},
		"turmeric":     {PricePerQuintal: 7000, CostPerAcre: 12000, Trend: TrendStable},
		"cumin":        {PricePerQuintal: 15000, CostPerAcre: 9000, Trend: TrendUp},
		"coriander":    {PricePerQuintal: 6500, CostPerAcre: 7000, Trend: TrendStable},
		"black_pepper": {PricePerQuintal: 34000, CostPerAcre: 25000, Trend: TrendUp},
		"cardamom":     {PricePerQuintal: 95000, CostPerAcre: 40000, Trend: TrendVolatile},
		"mustard":      {PricePerQuintal: 5400, CostPerAcre: 4500, Trend: TrendStable},

		// Pulses
		"chickpea":  {PricePerQuintal: 5800, CostPerAcre: 5000, Trend: TrendUp},
		"lentil":    {PricePerQuintal: 6200, CostPerAcre: 5500, Trend: TrendStable},
		"moong_dal": {PricePerQuintal: 7500, CostPerAcre: 6000, Trend: TrendUp},
	}
}

// Lookup resolves a crop, substituting the permissive default for unknown
// identifiers.
func (m MarketTable) Lookup(crop string) MarketEntry {
	if entry, ok := m[crop]; ok {
		return entry
	}
	return defaultMarketEntry
}
