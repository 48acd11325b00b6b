package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pos-service/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Quote is the running-total view recomputed after every cart mutation
// and shown by the till's display layer.
type Quote struct {
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	Total           decimal.Decimal
	ItemCount       int
}

// Subtotal sums unit price times quantity across the lines. Intermediate
// sums carry full precision; rounding to currency precision happens only
// once, at the discount step, so independently re-derived report totals
// always match.
func Subtotal(lines []model.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal
}

// ApplyDiscount computes the discount amount and final total for a
// subtotal at the given percentage. The discount amount is rounded to
// two decimal places; the total is subtotal minus that rounded amount.
func ApplyDiscount(subtotal, percent decimal.Decimal) (discountAmount, total decimal.Decimal, err error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero, decimal.Zero, &model.ValidationError{
			Field:  "discount",
			Reason: fmt.Sprintf("percentage %s outside 0-100", percent.String()),
		}
	}
	discountAmount = subtotal.Mul(percent).Div(hundred).Round(2)
	total = subtotal.Sub(discountAmount)
	return discountAmount, total, nil
}

// QuoteLines builds the running-total quote for the given lines and
// discount percentage.
func QuoteLines(lines []model.CartLine, percent decimal.Decimal) (Quote, error) {
	subtotal := Subtotal(lines)
	discountAmount, total, err := ApplyDiscount(subtotal, percent)
	if err != nil {
		return Quote{}, err
	}
	itemCount := 0
	for _, line := range lines {
		itemCount += line.Quantity
	}
	return Quote{
		Subtotal:        subtotal,
		DiscountPercent: percent,
		DiscountAmount:  discountAmount,
		Total:           total,
		ItemCount:       itemCount,
	}, nil
}
