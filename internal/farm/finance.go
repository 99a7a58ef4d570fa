package farm

// Financials is the derived projection for a given yield at current
// market prices.
type Financials struct {
	Revenue         float64 `json:"revenue"`
	TotalCost       float64 `json:"total_cost"`
	Profit          float64 `json:"profit"`
	ROI             float64 `json:"roi"`
	PricePerQuintal float64 `json:"price_per_quintal"`
	Trend           Trend   `json:"trend"`
}

// ComputeFinancials is pure: revenue from yield at the crop's quintal
// price, cost from area at the crop's per-acre cost.
func ComputeFinancials(yieldQuintals float64, crop string, area float64, market MarketTable) Financials {
	entry := market.Lookup(crop)

	revenue := yieldQuintals * entry.PricePerQuintal
	totalCost := area * entry.CostPerAcre
	profit := revenue - totalCost
	roi := 0.0
	if totalCost > 0 {
		roi = profit / totalCost * 100
	}

	return Financials{
		Revenue:         revenue,
		TotalCost:       totalCost,
		Profit:          profit,
		ROI:             roi,
		PricePerQuintal: entry.PricePerQuintal,
		Trend:           entry.Trend,
	}
}
