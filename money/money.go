// Package money holds the rounding rules for monetary amounts.
//
// All cash movements and totals round to 2 decimal places; the average
// cost basis of a position keeps 4 decimal places so repeated averaging
// does not drift. Rounding goes through shopspring/decimal so half-cent
// values land where the scaled round-half-up rule says, not where float64
// representation happens to put them.
package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to cents.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round4 rounds a per-share cost basis to 4 decimal places.
func Round4(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(4).Float64()
	return f
}

// Total returns the rounded cost of qty shares at the given per-share price.
func Total(qty int, price float64) float64 {
	f, _ := decimal.NewFromInt(int64(qty)).Mul(decimal.NewFromFloat(price)).Round(2).Float64()
	return f
}

// WeightedAvgCost recomputes a position's average cost after buying more
// shares: (oldAvg*oldQty + addTotal) / (oldQty + addQty), at 4 decimals.
func WeightedAvgCost(oldAvg float64, oldQty int, addTotal float64, addQty int) float64 {
	oldCost := decimal.NewFromFloat(oldAvg).Mul(decimal.NewFromInt(int64(oldQty)))
	newQty := decimal.NewFromInt(int64(oldQty + addQty))
	f, _ := oldCost.Add(decimal.NewFromFloat(addTotal)).Div(newQty).Round(4).Float64()
	return f
}
