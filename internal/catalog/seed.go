package catalog

import (
	"github.com/shopspring/decimal"

	"pos-service/internal/model"
)

func seedSKU(id, category, name, size, price string, stock int) model.SKU {
	return model.SKU{
		ID:           id,
		Category:     category,
		Name:         name,
		Size:         size,
		Price:        decimal.RequireFromString(price),
		Stock:        stock,
		InitialStock: stock,
	}
}

// DefaultSeed returns the winter-season opening catalog. Stock values are
// the season's opening counts; the catalog file overrides them on load.
func DefaultSeed() []model.SKU {
	return []model.SKU{
		seedSKU("SC-WS-S", "Scarves", "Wool Scarf", "S", "24.00", 20),
		seedSKU("SC-WS-M", "Scarves", "Wool Scarf", "M", "27.00", 18),
		seedSKU("SC-WS-L", "Scarves", "Wool Scarf", "L", "30.00", 12),
		seedSKU("SC-CS-M", "Scarves", "Cashmere Scarf", "M", "45.50", 10),
		seedSKU("SC-CS-L", "Scarves", "Cashmere Scarf", "L", "49.50", 8),
		seedSKU("SW-CK-S", "Sweaters", "Cable Knit Sweater", "S", "54.00", 15),
		seedSKU("SW-CK-M", "Sweaters", "Cable Knit Sweater", "M", "58.00", 15),
		seedSKU("SW-CK-L", "Sweaters", "Cable Knit Sweater", "L", "58.00", 10),
		seedSKU("BN-PB-OS", "Beanies", "Pom Beanie", "One Size", "16.50", 30),
		seedSKU("GL-FG-S", "Gloves", "Fleece Gloves", "S", "14.00", 25),
		seedSKU("GL-FG-M", "Gloves", "Fleece Gloves", "M", "14.00", 25),
		seedSKU("GL-FG-L", "Gloves", "Fleece Gloves", "L", "14.00", 20),
	}
}
