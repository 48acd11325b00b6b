package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-service/internal/model"
)

func line(price string, qty int) model.CartLine {
	return model.CartLine{
		SKU: &model.SKU{
			ID:    "TEST",
			Name:  "Test Product",
			Size:  "M",
			Price: decimal.RequireFromString(price),
			Stock: 100,
		},
		Quantity: qty,
	}
}

func TestSubtotalSumsLineTotals(t *testing.T) {
	lines := []model.CartLine{
		line("27.00", 3),
		line("16.50", 2),
	}

	subtotal := Subtotal(lines)
	assert.True(t, subtotal.Equal(decimal.RequireFromString("114.00")),
		"got %s", subtotal)
}

func TestSubtotalEmpty(t *testing.T) {
	assert.True(t, Subtotal(nil).IsZero())
}

func TestApplyDiscountScenario(t *testing.T) {
	// 3 x 27.00 at 10% off
	subtotal := decimal.RequireFromString("81.00")

	amount, total, err := ApplyDiscount(subtotal, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("8.10")), "got %s", amount)
	assert.True(t, total.Equal(decimal.RequireFromString("72.90")), "got %s", total)
}

func TestApplyDiscountRoundsOnlyTheDiscount(t *testing.T) {
	// 33.33 at 7% -> 2.3331, rounds to 2.33
	subtotal := decimal.RequireFromString("33.33")

	amount, total, err := ApplyDiscount(subtotal, decimal.NewFromInt(7))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("2.33")), "got %s", amount)
	assert.True(t, total.Equal(subtotal.Sub(amount)), "got %s", total)
}

func TestApplyDiscountBounds(t *testing.T) {
	subtotal := decimal.RequireFromString("50.00")

	for _, percent := range []int64{0, 100} {
		_, _, err := ApplyDiscount(subtotal, decimal.NewFromInt(percent))
		assert.NoError(t, err, "percent %d should be valid", percent)
	}
	for _, percent := range []int64{-1, 101} {
		_, _, err := ApplyDiscount(subtotal, decimal.NewFromInt(percent))
		assert.True(t, model.IsValidation(err), "percent %d should be rejected", percent)
	}
}

func TestApplyDiscountTotalInvariant(t *testing.T) {
	// total = subtotal - round(subtotal*rate/100, 2) for a spread of inputs
	subtotals := []string{"0.01", "9.99", "81.00", "123.45", "999.97"}
	percents := []int64{0, 5, 10, 33, 50, 100}

	for _, s := range subtotals {
		subtotal := decimal.RequireFromString(s)
		for _, p := range percents {
			percent := decimal.NewFromInt(p)
			amount, total, err := ApplyDiscount(subtotal, percent)
			require.NoError(t, err)

			expected := subtotal.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
			assert.True(t, amount.Equal(expected), "subtotal %s percent %d: got %s", s, p, amount)
			assert.True(t, total.Equal(subtotal.Sub(amount)), "subtotal %s percent %d: got %s", s, p, total)
		}
	}
}

func TestQuoteLines(t *testing.T) {
	lines := []model.CartLine{
		line("27.00", 3),
		line("14.00", 1),
	}

	quote, err := QuoteLines(lines, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, quote.Subtotal.Equal(decimal.RequireFromString("95.00")), "got %s", quote.Subtotal)
	assert.True(t, quote.DiscountAmount.Equal(decimal.RequireFromString("9.50")), "got %s", quote.DiscountAmount)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("85.50")), "got %s", quote.Total)
	assert.Equal(t, 4, quote.ItemCount)
}

func TestQuoteLinesBadDiscount(t *testing.T) {
	_, err := QuoteLines([]model.CartLine{line("10.00", 1)}, decimal.NewFromInt(150))
	assert.True(t, model.IsValidation(err))
}
