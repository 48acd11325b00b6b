package catalog

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"pos-service/internal/model"
	"pos-service/pkg/logger"
)

// Catalog holds the live SKU set for one till session. Lookups go through
// a keyed index; List preserves insertion order. All stock mutation runs
// under the catalog mutex so stock checks and deductions cannot interleave.
type Catalog struct {
	mu    sync.Mutex
	index map[string]*model.SKU
	order []*model.SKU
}

// New builds a catalog from seed SKUs. Duplicate SKU identifiers are a
// seed defect and fail construction.
func New(seed []model.SKU) (*Catalog, error) {
	c := &Catalog{
		index: make(map[string]*model.SKU, len(seed)),
		order: make([]*model.SKU, 0, len(seed)),
	}
	for i := range seed {
		sku := seed[i]
		if _, exists := c.index[sku.ID]; exists {
			return nil, &model.ValidationError{
				Field:  "sku",
				Reason: fmt.Sprintf("duplicate identifier %q", sku.ID),
			}
		}
		if sku.Price.IsNegative() {
			return nil, &model.ValidationError{
				Field:  "price",
				Reason: fmt.Sprintf("negative price for %q", sku.ID),
			}
		}
		c.index[sku.ID] = &sku
		c.order = append(c.order, &sku)
	}
	return c, nil
}

// FindBySKU looks up a product by identifier
func (c *Catalog) FindBySKU(id string) (*model.SKU, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sku, ok := c.index[id]
	if !ok {
		return nil, &model.NotFoundError{Kind: "sku", Key: id}
	}
	return sku, nil
}

// List returns all SKUs in insertion order
func (c *Catalog) List() []*model.SKU {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*model.SKU, len(c.order))
	copy(out, c.order)
	return out
}

// LowStock returns SKUs with stock above zero but below the threshold,
// in catalog order
func (c *Catalog) LowStock(threshold int) []*model.SKU {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []*model.SKU
	for _, sku := range c.order {
		if sku.Stock > 0 && sku.Stock < threshold {
			out = append(out, sku)
		}
	}
	return out
}

// SetStock overwrites the live stock level for one SKU. Used by the
// catalog file loader; sale-time deductions go through Deduct.
func (c *Catalog) SetStock(id string, stock int) error {
	if stock < 0 {
		return &model.ValidationError{
			Field:  "stock",
			Reason: fmt.Sprintf("negative stock %d for %q", stock, id),
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sku, ok := c.index[id]
	if !ok {
		return &model.NotFoundError{Kind: "sku", Key: id}
	}
	sku.Stock = stock
	return nil
}

// Deduct validates every cart line against live stock and, only when all
// lines pass, deducts the quantities in cart order. Validation sums the
// requested quantity per SKU, so two lines for the same product cannot
// slip past a per-line check and drive stock negative. The check and the
// deduction run under one lock acquisition; a rejection leaves every
// stock level untouched.
func (c *Catalog) Deduct(lines []model.CartLine) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	requested := make(map[string]int, len(lines))
	var checkOrder []string
	for _, line := range lines {
		if _, seen := requested[line.SKU.ID]; !seen {
			checkOrder = append(checkOrder, line.SKU.ID)
		}
		requested[line.SKU.ID] += line.Quantity
	}

	var shortfalls []model.Shortfall
	for _, id := range checkOrder {
		sku := c.index[id]
		if requested[id] > sku.Stock {
			shortfalls = append(shortfalls, model.Shortfall{
				SKUID:     id,
				Requested: requested[id],
				Available: sku.Stock,
			})
		}
	}
	if len(shortfalls) > 0 {
		return &model.RejectionError{Shortfalls: shortfalls}
	}

	for _, line := range lines {
		sku := c.index[line.SKU.ID]
		sku.Stock -= line.Quantity
		logger.GetLogger().Debug("Stock deducted",
			zap.String("sku", sku.ID),
			zap.Int("quantity", line.Quantity),
			zap.Int("remaining", sku.Stock))
	}
	return nil
}
