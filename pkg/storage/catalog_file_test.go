package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-service/internal/catalog"
	"pos-service/internal/model"
)

func testSeed() []model.SKU {
	sku := func(id, category, name, size, price string, stock int) model.SKU {
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
	return []model.SKU{
		sku("SC-WS-M", "Scarves", "Wool Scarf", "M", "27.00", 18),
		sku("BN-PB-OS", "Beanies", "Pom Beanie", "One Size", "16.50", 30),
	}
}

func TestSaveThenLoadRoundTripsStock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	file := NewCatalogFile(path)

	cat, err := catalog.New(testSeed())
	require.NoError(t, err)
	require.NoError(t, cat.SetStock("SC-WS-M", 15))
	require.NoError(t, cat.SetStock("BN-PB-OS", 7))
	require.NoError(t, file.Save(cat))

	fresh, err := catalog.New(testSeed())
	require.NoError(t, err)
	require.NoError(t, file.Load(fresh))

	for _, sku := range cat.List() {
		loaded, err := fresh.FindBySKU(sku.ID)
		require.NoError(t, err)
		assert.Equal(t, sku.Stock, loaded.Stock, "stock mismatch for %s", sku.ID)
	}
}

func TestLoadAbsentFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	file := NewCatalogFile(path)

	cat, err := catalog.New(testSeed())
	require.NoError(t, err)
	require.NoError(t, file.Load(cat))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.True(t, strings.HasPrefix(text, "SKU,Category,ProductName,Size,Price,Stock\n"))
	assert.Contains(t, text, "SC-WS-M,Scarves,Wool Scarf,M,27.00,18")

	// Stock untouched by the fresh write
	sku, err := cat.FindBySKU("SC-WS-M")
	require.NoError(t, err)
	assert.Equal(t, 18, sku.Stock)
}

func TestLoadSkipsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	content := strings.Join([]string{
		"SKU,Category,ProductName,Size,Price,Stock",
		"SC-WS-M,Scarves,Wool Scarf,M,27.00,9",
		"ZZ-XX-L,Mystery,Unknown Product,L,10.00,4",
		"BN-PB-OS,Beanies,Pom Beanie,One Size,16.50,notanumber",
		"short,row",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := catalog.New(testSeed())
	require.NoError(t, err)
	require.NoError(t, NewCatalogFile(path).Load(cat))

	// The good row applied; the unknown, malformed and bad-stock rows did not
	scarf, _ := cat.FindBySKU("SC-WS-M")
	assert.Equal(t, 9, scarf.Stock)
	beanie, _ := cat.FindBySKU("BN-PB-OS")
	assert.Equal(t, 30, beanie.Stock)
}

func TestSavePriceHasTwoDecimals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	cat, err := catalog.New([]model.SKU{{
		ID:           "GL-FG-L",
		Category:     "Gloves",
		Name:         "Fleece Gloves",
		Size:         "L",
		Price:        decimal.RequireFromString("14"),
		Stock:        20,
		InitialStock: 20,
	}})
	require.NoError(t, err)
	require.NoError(t, NewCatalogFile(path).Save(cat))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "GL-FG-L,Gloves,Fleece Gloves,L,14.00,20")
}
