package services_test

import (
	"testing"

	"freshfold/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestPriceTotal_RoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 200.0, services.PriceTotal(5, 40))
	assert.Equal(t, 99.0, services.PriceTotal(2.475, 40)) // 99.00 exactly
	assert.Equal(t, 50.0, services.PriceTotal(1.111, 45)) // 49.995 rounds up
	assert.Equal(t, 0.0, services.PriceTotal(3, 0))
}

func TestPriceTotal_MonotonicInWeight(t *testing.T) {
	rate := 63.37
	prev := 0.0
	for w := 0.5; w <= 100; w += 0.5 {
		total := services.PriceTotal(w, rate)
		assert.GreaterOrEqual(t, total, prev, "total must not decrease at weight %v", w)
		prev = total
	}
}

func TestQuoteFromInput_FreeText(t *testing.T) {
	assert.Equal(t, 200.0, services.QuoteFromInput("5", 40))
	assert.Equal(t, 220.0, services.QuoteFromInput(" 5.5 ", 40))

	// Placeholder cases: not errors, just a zero quote.
	assert.Equal(t, 0.0, services.QuoteFromInput("", 40))
	assert.Equal(t, 0.0, services.QuoteFromInput("five", 40))
	assert.Equal(t, 0.0, services.QuoteFromInput("-2", 40))
}
