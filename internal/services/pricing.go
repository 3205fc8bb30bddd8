package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PriceTotal computes the booking charge: weight x per-kg rate, rounded to
// 2 decimal places. Deterministic, no I/O; the result is snapshotted onto
// the booking at creation and never recomputed.
func PriceTotal(weightKg, pricePerKg float64) float64 {
	return decimal.NewFromFloat(weightKg).
		Mul(decimal.NewFromFloat(pricePerKg)).
		Round(2).
		InexactFloat64()
}

// QuoteFromInput prices a free-text weight from the booking form. Empty or
// non-numeric input yields 0 (the form shows a placeholder until a valid
// number is typed); it is not an error.
func QuoteFromInput(weightText string, pricePerKg float64) float64 {
	w, err := decimal.NewFromString(strings.TrimSpace(weightText))
	if err != nil || w.IsNegative() {
		return 0
	}
	return w.Mul(decimal.NewFromFloat(pricePerKg)).Round(2).InexactFloat64()
}
