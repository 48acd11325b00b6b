package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnonymousCashier is the sentinel actor name recorded when no cashier
// has been identified to the till.
const AnonymousCashier = "walk-in"

// CartLine is one SKU plus a requested quantity in an in-progress cart.
// It holds a read-only reference into the live catalog; the line total is
// always recomputed, never cached.
type CartLine struct {
	SKU      *SKU
	Quantity int
}

// LineTotal returns unit price times quantity, unrounded.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.SKU.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// TransactionLine is the frozen copy of a cart line captured at commit
// time. It deliberately does not reference the live SKU, so later stock
// or price changes never alter historical records.
type TransactionLine struct {
	SKUID     string          `json:"sku"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns unit price times quantity for the frozen line.
func (l TransactionLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Transaction is one committed sale. Instances are immutable once created
// and live append-only in the store's history.
type Transaction struct {
	ID              string            `json:"id"`
	AttemptID       uuid.UUID         `json:"attempt_id"`
	Timestamp       time.Time         `json:"timestamp"`
	Lines           []TransactionLine `json:"lines"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
	DiscountAmount  decimal.Decimal   `json:"discount_amount"`
	Total           decimal.Decimal   `json:"total"`
	ItemCount       int               `json:"item_count"`
	Cashier         string            `json:"cashier"`
	CouponCode      string            `json:"coupon_code,omitempty"`
}
