package cart

import (
	"fmt"

	"pos-service/internal/model"
)

// Cart is the ordered set of lines for the in-progress sale. A cart
// belongs to exactly one transaction attempt; it is cleared after a
// committed checkout and left intact after a rejection so the cashier
// can correct it.
type Cart struct {
	lines []model.CartLine
}

// New returns an empty cart
func New() *Cart {
	return &Cart{}
}

// AddLine appends one line for the given SKU. The stock check here is a
// soft one against stock at add time; checkout re-validates against live
// stock before committing.
func (c *Cart) AddLine(sku *model.SKU, quantity int) error {
	if quantity <= 0 {
		return &model.ValidationError{
			Field:  "quantity",
			Reason: fmt.Sprintf("must be positive, got %d", quantity),
		}
	}
	if quantity > sku.Stock {
		return &model.ValidationError{
			Field:  "quantity",
			Reason: fmt.Sprintf("%d exceeds available stock %d for %s", quantity, sku.Stock, sku.ID),
		}
	}
	c.lines = append(c.lines, model.CartLine{SKU: sku, Quantity: quantity})
	return nil
}

// RemoveLine deletes the line at the given zero-based position
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return &model.ValidationError{
			Field:  "line",
			Reason: fmt.Sprintf("no line at position %d", index),
		}
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Clear discards all lines
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns the cart lines in entry order
func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount returns the total quantity across all lines
func (c *Cart) ItemCount() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
