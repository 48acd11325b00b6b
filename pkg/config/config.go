package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// TillConfig holds point-of-sale behavior configuration
type TillConfig struct {
	DefaultCashier    string
	LowStockThreshold int
}

// StorageConfig holds flat-file persistence configuration
type StorageConfig struct {
	DataDir       string
	CatalogFile   string
	HistoryFile   string
	AppendRetries int
	RetryDelay    time.Duration
}

// CatalogPath returns the full path to the catalog CSV file
func (c *StorageConfig) CatalogPath() string {
	return filepath.Join(c.DataDir, c.CatalogFile)
}

// HistoryPath returns the full path to the sales history file
func (c *StorageConfig) HistoryPath() string {
	return filepath.Join(c.DataDir, c.HistoryFile)
}

// ServerConfig holds process environment configuration
type ServerConfig struct {
	Env string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Till        TillConfig
	Storage     StorageConfig
	Server      ServerConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not returning error as .env file is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	// Initialize config struct with values from environment
	config := &Config{
		ServiceName: serviceName,
		Till: TillConfig{
			DefaultCashier:    getEnv("TILL_DEFAULT_CASHIER", "walk-in"),
			LowStockThreshold: getEnvAsInt("TILL_LOW_STOCK_THRESHOLD", 5),
		},
		Storage: StorageConfig{
			DataDir:       getEnv("STORAGE_DATA_DIR", "data"),
			CatalogFile:   getEnv("STORAGE_CATALOG_FILE", "catalog.csv"),
			HistoryFile:   getEnv("STORAGE_HISTORY_FILE", "sales_history.txt"),
			AppendRetries: getEnvAsInt("STORAGE_APPEND_RETRIES", 3),
			RetryDelay:    getEnvAsDuration("STORAGE_RETRY_DELAY", 100*time.Millisecond),
		},
		Server: ServerConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", serviceName),
		},
	}

	return config, nil
}

// LogConfig returns the configuration as a zap logger-friendly format
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("data_dir", c.Storage.DataDir),
		zap.String("catalog_file", c.Storage.CatalogFile),
		zap.String("history_file", c.Storage.HistoryFile),
		zap.String("default_cashier", c.Till.DefaultCashier),
		zap.Int("low_stock_threshold", c.Till.LowStockThreshold),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
