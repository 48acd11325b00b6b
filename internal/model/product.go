package model

import (
	"github.com/shopspring/decimal"
)

// SKU represents one sellable product-size combination in the catalog.
// Stock is the live on-hand count; InitialStock is fixed at catalog
// initialization and never mutated afterwards.
type SKU struct {
	ID           string          `json:"sku"`
	Category     string          `json:"category"`
	Name         string          `json:"name"`
	Size         string          `json:"size"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	InitialStock int             `json:"initial_stock"`
}

// DisplayName returns the product name with its size label, as printed on receipts.
func (s *SKU) DisplayName() string {
	return s.Name + " (" + s.Size + ")"
}

// UnitsSold derives the number of units sold since catalog initialization.
func (s *SKU) UnitsSold() int {
	return s.InitialStock - s.Stock
}
