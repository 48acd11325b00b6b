package till

import (
	"context"

	"github.com/shopspring/decimal"

	"pos-service/internal/cart"
	"pos-service/internal/catalog"
	"pos-service/internal/checkout"
	"pos-service/internal/model"
	"pos-service/internal/pricing"
	"pos-service/internal/store"
)

// Session is the surface the surrounding display/input layer talks to:
// one open cart, the checkout processor behind it and the reporting
// queries. One session per till process.
type Session struct {
	catalog   *catalog.Catalog
	cart      *cart.Cart
	processor *checkout.Processor
	queries   *store.Queries
}

// CartView is what the till displays after every cart mutation: the
// current lines plus the running totals.
type CartView struct {
	Lines []model.CartLine
	Quote pricing.Quote
}

// NewSession opens a till session over the given catalog and store
func NewSession(cat *catalog.Catalog, st *store.Store, defaultCashier string) *Session {
	return &Session{
		catalog:   cat,
		cart:      cart.New(),
		processor: checkout.NewProcessor(cat, st, defaultCashier),
		queries:   store.NewQueries(st),
	}
}

// AddItem resolves the SKU and adds it to the open cart
func (s *Session) AddItem(skuID string, quantity int) error {
	sku, err := s.catalog.FindBySKU(skuID)
	if err != nil {
		return err
	}
	return s.cart.AddLine(sku, quantity)
}

// RemoveLine drops the cart line at the given position
func (s *Session) RemoveLine(index int) error {
	return s.cart.RemoveLine(index)
}

// ClearCart abandons the in-progress sale
func (s *Session) ClearCart() {
	s.cart.Clear()
}

// View returns the current cart with running totals at the given
// discount percentage
func (s *Session) View(discountPercent decimal.Decimal) (CartView, error) {
	lines := s.cart.Lines()
	quote, err := pricing.QuoteLines(lines, discountPercent)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Lines: lines, Quote: quote}, nil
}

// Checkout commits the open cart
func (s *Session) Checkout(ctx context.Context, req checkout.Request) (*model.Transaction, error) {
	return s.processor.Checkout(ctx, s.cart, req)
}

// Catalog exposes read access to the live catalog
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Reports exposes the read-only reporting queries
func (s *Session) Reports() *store.Queries {
	return s.queries
}
