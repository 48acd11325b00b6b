package main

import (
	"pos-service/internal/catalog"
	"pos-service/internal/store"
	"pos-service/internal/till"
	"pos-service/pkg/config"
	"pos-service/pkg/logger"
	"pos-service/pkg/storage"
	"pos-service/prometheus"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Just log a warning, don't fail if .env file is not found
		// This allows the till to run in environments where env vars are set differently
		// The fallback values will be used in case env vars are not set
	}

	// Load configuration
	appConfig, err := config.Load("pos-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting pos-service", appConfig.LogConfig()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Build the catalog from seed data, then overlay persisted stock levels
	cat, err := catalog.New(catalog.DefaultSeed())
	if err != nil {
		log.Fatal("Failed to build catalog", zap.Error(err))
	}

	catalogFile := storage.NewCatalogFile(appConfig.Storage.CatalogPath())
	if err := catalogFile.Load(cat); err != nil {
		// Degrade to the in-memory defaults and keep running
		log.Warn("Catalog load failed, continuing with defaults", zap.Error(err))
	}

	// Wire the transaction store and checkout processor
	historyFile := storage.NewHistoryFile(
		appConfig.Storage.HistoryPath(),
		appConfig.Storage.AppendRetries,
		appConfig.Storage.RetryDelay,
	)
	txnStore := store.NewStore(historyFile)
	session := till.NewSession(cat, txnStore, appConfig.Till.DefaultCashier)

	// Publish opening inventory levels
	for _, sku := range cat.List() {
		prometheus.UpdateProductInventory(sku.ID, sku.Name, sku.Category, float64(sku.Stock))
	}

	// Surface anything already running low
	for _, sku := range cat.LowStock(appConfig.Till.LowStockThreshold) {
		log.Warn("Low stock at till open",
			zap.String("sku", sku.ID),
			zap.String("product", sku.DisplayName()),
			zap.Int("stock", sku.Stock))
	}

	summary := session.Reports().Aggregate()
	log.Info("Till ready",
		zap.Int("catalog_size", len(cat.List())),
		zap.Int("next_sequence", txnStore.Sequence()),
		zap.Int("transactions", summary.TransactionCount),
		zap.String("revenue", summary.TotalRevenue.StringFixed(2)))

	// Persist the catalog so a fresh deployment has its file in place
	if err := catalogFile.Save(cat); err != nil {
		log.Error("Failed to persist catalog", zap.Error(err))
	}
}
