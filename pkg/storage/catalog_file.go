package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"pos-service/internal/catalog"
	"pos-service/internal/model"
	"pos-service/pkg/logger"
	"pos-service/prometheus"
)

var catalogHeader = []string{"SKU", "Category", "ProductName", "Size", "Price", "Stock"}

// CatalogFile persists the catalog as a CSV file. Loading only updates
// live stock levels for SKUs the catalog already knows; prices and names
// stay with the in-memory seed.
type CatalogFile struct {
	path string
}

// NewCatalogFile returns a catalog file port for the given path
func NewCatalogFile(path string) *CatalogFile {
	return &CatalogFile{path: path}
}

// Load reads stock levels from the file into the catalog. An absent file
// is not an error: the current in-memory catalog is written out fresh
// instead. Unknown or malformed rows are skipped with a warning so one
// bad line never loses the rest of the file.
func (f *CatalogFile) Load(cat *catalog.Catalog) error {
	log := logger.GetLogger()

	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		log.Info("Catalog file absent, writing defaults", zap.String("path", f.path))
		return f.Save(cat)
	}
	if err != nil {
		prometheus.RecordPersistenceFailure("catalog_load")
		return &model.PersistenceError{Op: "load", Path: f.path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		prometheus.RecordPersistenceFailure("catalog_load")
		return &model.PersistenceError{Op: "load", Path: f.path, Err: err}
	}

	loaded := 0
	for i, record := range records {
		if i == 0 {
			// Header row
			continue
		}
		if len(record) != len(catalogHeader) {
			log.Warn("Skipping malformed catalog row",
				zap.Int("line", i+1),
				zap.Int("fields", len(record)))
			continue
		}
		id := record[0]
		stock, err := strconv.Atoi(record[5])
		if err != nil || stock < 0 {
			log.Warn("Skipping catalog row with bad stock value",
				zap.String("sku", id),
				zap.String("stock", record[5]))
			continue
		}
		if err := cat.SetStock(id, stock); err != nil {
			log.Warn("Skipping unrecognized catalog row", zap.String("sku", id))
			continue
		}
		loaded++
	}

	log.Info("Catalog loaded",
		zap.String("path", f.path),
		zap.Int("skus_updated", loaded))
	return nil
}

// Save writes the full catalog in insertion order, prices with exactly
// two decimal places. The write goes to a temp file first and is renamed
// into place so a crash mid-write cannot truncate the catalog.
func (f *CatalogFile) Save(cat *catalog.Catalog) error {
	tmp := f.path + ".tmp"
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			prometheus.RecordPersistenceFailure("catalog_save")
			return &model.PersistenceError{Op: "save", Path: f.path, Err: err}
		}
	}

	file, err := os.Create(tmp)
	if err != nil {
		prometheus.RecordPersistenceFailure("catalog_save")
		return &model.PersistenceError{Op: "save", Path: f.path, Err: err}
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(catalogHeader); err != nil {
		file.Close()
		prometheus.RecordPersistenceFailure("catalog_save")
		return &model.PersistenceError{Op: "save", Path: f.path, Err: err}
	}
	for _, sku := range cat.List() {
		row := []string{
			sku.ID,
			sku.Category,
			sku.Name,
			sku.Size,
			sku.Price.StringFixed(2),
			strconv.Itoa(sku.Stock),
		}
		if err := writer.Write(row); err != nil {
			file.Close()
			prometheus.RecordPersistenceFailure("catalog_save")
			return &model.PersistenceError{Op: "save", Path: f.path, Err: err}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		prometheus.RecordPersistenceFailure("catalog_save")
		return &model.PersistenceError{Op: "save", Path: f.path, Err: err}
	}
	if err := file.Close(); err != nil {
		prometheus.RecordPersistenceFailure("catalog_save")
		return &model.PersistenceError{Op: "save", Path: f.path, Err: err}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		prometheus.RecordPersistenceFailure("catalog_save")
		return &model.PersistenceError{Op: "save", Path: f.path, Err: err}
	}

	logger.GetLogger().Info("Catalog saved", zap.String("path", f.path))
	return nil
}
