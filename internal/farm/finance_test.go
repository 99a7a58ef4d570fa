package farm

import (
	"math"
	"testing"
)

func TestComputeFinancialsWheat(t *testing.T) {
	market := DefaultMarket()
	got := ComputeFinancials(50, "wheat", 10, market)

	if got.Revenue != 110000 {
		t.Fatalf("revenue = %v, want 110000", got.Revenue)
	}
	if got.TotalCost != 60000 {
		t.Fatalf("cost = %v, want 60000", got.TotalCost)
	}
	if got.Profit != 50000 {
		t.Fatalf("profit = %v, want 50000", got.Profit)
	}
	if math.Abs(got.ROI-83.3333) > 0.001 {
		t.Fatalf("roi = %v, want ≈83.33", got.ROI)
	}
	if got.PricePerQuintal != 2200 || got.Trend != TrendUp {
		t.Fatalf("market passthrough wrong: %+v", got)
	}
}

func TestComputeFinancialsUnknownCropUsesDefault(t *testing.T) {
	got := ComputeFinancials(10, "dragonfruit", 2, DefaultMarket())

	if got.PricePerQuintal != 2000 || got.Trend != TrendStable {
		t.Fatalf("default entry not applied: %+v", got)
	}
	if got.Revenue != 20000 || got.TotalCost != 10000 || got.Profit != 10000 {
		t.Fatalf("default figures wrong: %+v", got)
	}
}

func TestComputeFinancialsZeroCost(t *testing.T) {
	got := ComputeFinancials(10, "wheat", 0, DefaultMarket())
	if got.ROI != 0 {
		t.Fatalf("roi = %v, want 0 when cost is 0", got.ROI)
	}
}

func TestMarketLookup(t *testing.T) {
	market := DefaultMarket()
	if len(market) < 20 {
		t.Fatalf("market table too small: %d crops", len(market))
	}
	if entry := market.Lookup("cardamom"); entry.Trend != TrendVolatile {
		t.Fatalf("cardamom trend = %v, want volatile", entry.Trend)
	}
	if entry := market.Lookup("nope"); entry != defaultMarketEntry {
		t.Fatalf("unknown crop should resolve to the default entry, got %+v", entry)
	}
}
