package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos-service/internal/cart"
	"pos-service/internal/catalog"
	"pos-service/internal/model"
	"pos-service/internal/pricing"
	"pos-service/internal/store"
	"pos-service/pkg/logger"
	"pos-service/prometheus"
)

// Request carries the checkout inputs supplied by the till's surrounding
// layer: the discount to apply, who rang the sale, and an optional coupon.
type Request struct {
	DiscountPercent decimal.Decimal
	Cashier         string
	CouponCode      string
}

// Processor drives a cart through Validating into Committed or Rejected.
// A rejection leaves the cart, every stock level and the sequence counter
// untouched; a commit deducts stock, assigns the transaction identifier,
// freezes the record and hands it to the store exactly once.
type Processor struct {
	catalog        *catalog.Catalog
	store          *store.Store
	defaultCashier string
}

// NewProcessor wires a processor to its catalog and store
func NewProcessor(cat *catalog.Catalog, st *store.Store, defaultCashier string) *Processor {
	if defaultCashier == "" {
		defaultCashier = model.AnonymousCashier
	}
	return &Processor{
		catalog:        cat,
		store:          st,
		defaultCashier: defaultCashier,
	}
}

// Checkout converts the cart into a committed transaction. On success the
// cart is cleared and the transaction returned. A ValidationError or
// RejectionError means nothing changed and the cart can be corrected. A
// PersistenceError means the commit stands in memory but the durable
// write is still pending; the transaction is returned alongside it.
func (p *Processor) Checkout(ctx context.Context, c *cart.Cart, req Request) (*model.Transaction, error) {
	attemptID := uuid.New()
	log := logger.FromContext(ctx).With(zap.String("attempt_id", attemptID.String()))

	prometheus.RecordAttempt()
	defer prometheus.TrackCheckout()(time.Now())

	if c.IsEmpty() {
		return nil, &model.ValidationError{Field: "cart", Reason: "no lines to check out"}
	}

	lines := c.Lines()
	subtotal := pricing.Subtotal(lines)
	discountAmount, total, err := pricing.ApplyDiscount(subtotal, req.DiscountPercent)
	if err != nil {
		log.Warn("Checkout rejected on discount input",
			zap.String("discount_percent", req.DiscountPercent.String()),
			zap.Error(err))
		return nil, err
	}

	// Validating: re-check every line against live stock and deduct in
	// one critical section. Any shortfall aborts with no stock change.
	if err := p.catalog.Deduct(lines); err != nil {
		prometheus.RecordRejection()
		log.Warn("Checkout rejected on stock validation", zap.Error(err))
		return nil, err
	}

	// Committed: one timestamp drives both the ID date segment and the
	// stored record, so the two can never straddle a day boundary.
	now := time.Now()
	txn := p.freeze(attemptID, p.store.NextID(now), now, lines, subtotal, discountAmount, total, req)

	appendErr := p.store.Append(txn)

	for _, line := range lines {
		prometheus.UpdateProductInventory(line.SKU.ID, line.SKU.Name, line.SKU.Category, float64(line.SKU.Stock))
	}
	prometheus.RecordCommit(txn.Total.InexactFloat64(), txn.ItemCount)
	c.Clear()

	log.Info("Checkout committed",
		zap.String("transaction_id", txn.ID),
		zap.String("cashier", txn.Cashier),
		zap.String("subtotal", txn.Subtotal.StringFixed(2)),
		zap.String("total", txn.Total.StringFixed(2)),
		zap.Int("item_count", txn.ItemCount))

	if appendErr != nil {
		// The sale is committed; only the durable write is outstanding.
		return txn, appendErr
	}
	return txn, nil
}

func (p *Processor) freeze(attemptID uuid.UUID, id string, at time.Time, lines []model.CartLine,
	subtotal, discountAmount, total decimal.Decimal, req Request) *model.Transaction {

	frozen := make([]model.TransactionLine, 0, len(lines))
	itemCount := 0
	for _, line := range lines {
		frozen = append(frozen, model.TransactionLine{
			SKUID:     line.SKU.ID,
			Name:      line.SKU.Name,
			Size:      line.SKU.Size,
			UnitPrice: line.SKU.Price,
			Quantity:  line.Quantity,
		})
		itemCount += line.Quantity
	}

	cashier := req.Cashier
	if cashier == "" {
		cashier = p.defaultCashier
	}

	return &model.Transaction{
		ID:              id,
		AttemptID:       attemptID,
		Timestamp:       at,
		Lines:           frozen,
		Subtotal:        subtotal,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  discountAmount,
		Total:           total,
		ItemCount:       itemCount,
		Cashier:         cashier,
		CouponCode:      req.CouponCode,
	}
}
