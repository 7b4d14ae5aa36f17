// Package freshness turns shelf-life estimates into consumer-facing
// freshness scores and retail markdown prices. Money math uses decimals,
// never floats.
package freshness

import (
	"math"

	"github.com/shopspring/decimal"
)

// Score converts remaining shelf life into a 0-100 freshness percentage.
// A non-positive total yields zero rather than dividing by it.
func Score(remainingDays, totalDays float64) float64 {
	if totalDays <= 0 || remainingDays <= 0 {
		return 0
	}
	score := remainingDays / totalDays * 100
	return math.Min(100, score)
}

// Remaining computes remaining shelf life given the batch age in days
func Remaining(predictedDays, ageDays float64) float64 {
	return math.Max(0, predictedDays-ageDays)
}

// markdown tiers: fresher stock keeps full price, aging stock is
// progressively discounted to move before spoilage.
var tiers = []struct {
	minScore   float64
	multiplier decimal.Decimal
}{
	{80, decimal.NewFromInt(1)},
	{50, decimal.RequireFromString("0.85")},
	{25, decimal.RequireFromString("0.60")},
	{0, decimal.RequireFromString("0.30")},
}

// Markdown returns the marked-down retail price for a freshness score,
// rounded to two decimal places.
func Markdown(basePrice decimal.Decimal, score float64) decimal.Decimal {
	for _, t := range tiers {
		if score >= t.minScore {
			return basePrice.Mul(t.multiplier).Round(2)
		}
	}
	return basePrice.Mul(tiers[len(tiers)-1].multiplier).Round(2)
}
