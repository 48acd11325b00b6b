package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pos-service/pkg/config"
)

var (
	// Checkout metrics
	CheckoutAttemptsCounter   prometheus.Counter
	CheckoutCommitsCounter    prometheus.Counter
	CheckoutRejectionsCounter prometheus.Counter
	CheckoutDuration          prometheus.Histogram

	// Sales metrics
	RevenueCounter   prometheus.Counter
	ItemsSoldCounter prometheus.Counter

	// Inventory metrics
	ProductInventoryGauge *prometheus.GaugeVec

	// Persistence metrics
	PersistenceFailuresCounter *prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// Checkout metrics
	CheckoutAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_attempts_total",
			Help: "Total number of checkout attempts",
		},
	)

	CheckoutCommitsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_commits_total",
			Help: "Total number of committed checkouts",
		},
	)

	CheckoutRejectionsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_rejections_total",
			Help: "Total number of checkouts rejected at stock validation",
		},
	)

	// Checkout duration
	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_checkout_duration_seconds",
			Help:    "Duration of checkout processing in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Sales metrics
	RevenueCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_revenue_total",
			Help: "Total revenue from committed transactions",
		},
	)

	ItemsSoldCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_items_sold_total",
			Help: "Total number of items sold",
		},
	)

	// Product inventory metrics
	ProductInventoryGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_product_inventory",
			Help: "Current inventory level for products",
		},
		[]string{"product_id", "product_name", "category"},
	)

	// Persistence metrics
	PersistenceFailuresCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_persistence_failures_total",
			Help: "Total number of flat-file persistence failures",
		},
		[]string{"operation"},
	)
}

// TrackCheckout returns a function that records the duration of a checkout
func TrackCheckout() func(startTime time.Time) {
	return func(startTime time.Time) {
		if CheckoutDuration == nil {
			return
		}
		CheckoutDuration.Observe(time.Since(startTime).Seconds())
	}
}

// RecordCommit increments the commit counter and accumulates revenue and item totals
func RecordCommit(revenue float64, items int) {
	if CheckoutCommitsCounter == nil {
		return
	}
	CheckoutCommitsCounter.Inc()
	RevenueCounter.Add(revenue)
	ItemsSoldCounter.Add(float64(items))
}

// RecordAttempt increments the checkout attempt counter
func RecordAttempt() {
	if CheckoutAttemptsCounter == nil {
		return
	}
	CheckoutAttemptsCounter.Inc()
}

// RecordRejection increments the rejection counter
func RecordRejection() {
	if CheckoutRejectionsCounter == nil {
		return
	}
	CheckoutRejectionsCounter.Inc()
}

// UpdateProductInventory updates the gauge for product inventory
func UpdateProductInventory(productID string, productName string, category string, count float64) {
	if ProductInventoryGauge == nil {
		return
	}
	ProductInventoryGauge.WithLabelValues(productID, productName, category).Set(count)
}

// RecordPersistenceFailure increments the counter for failed file operations
func RecordPersistenceFailure(operation string) {
	if PersistenceFailuresCounter == nil {
		return
	}
	PersistenceFailuresCounter.WithLabelValues(operation).Inc()
}
