package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"pos-service/internal/model"
	"pos-service/pkg/logger"
	"pos-service/prometheus"
)

const historyDelimiter = "========================================"

// HistoryFile appends committed transactions to the sales history as
// human-readable blocks. The file is write-only for the engine; searches
// run against the in-memory store, never by re-parsing this file.
type HistoryFile struct {
	path    string
	retries int
	delay   time.Duration
}

// NewHistoryFile returns a history appender for the given path. retries
// is how many extra attempts a transient write failure gets; delay is
// the pause between attempts.
func NewHistoryFile(path string, retries int, delay time.Duration) *HistoryFile {
	if retries < 0 {
		retries = 0
	}
	return &HistoryFile{path: path, retries: retries, delay: delay}
}

// Append writes one transaction block. Transient failures are retried a
// bounded number of times; a write that succeeded is never repeated.
func (f *HistoryFile) Append(txn *model.Transaction) error {
	block := FormatTransaction(txn)

	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			time.Sleep(f.delay)
			logger.GetLogger().Warn("Retrying history append",
				zap.String("transaction_id", txn.ID),
				zap.Int("attempt", attempt+1))
		}
		if lastErr = f.write(block); lastErr == nil {
			return nil
		}
	}

	prometheus.RecordPersistenceFailure("history_write")
	return &model.PersistenceError{Op: "append", Path: f.path, Err: lastErr}
}

func (f *HistoryFile) write(block string) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(block); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// FormatTransaction renders the receipt-style history block for one
// transaction.
func FormatTransaction(txn *model.Transaction) string {
	var b strings.Builder
	b.WriteString(historyDelimiter + "\n")
	fmt.Fprintf(&b, "Transaction ID : %s\n", txn.ID)
	fmt.Fprintf(&b, "Date           : %s\n", txn.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Cashier        : %s\n", txn.Cashier)
	if txn.CouponCode != "" {
		fmt.Fprintf(&b, "Coupon         : %s\n", txn.CouponCode)
	}
	b.WriteString("Items:\n")
	for _, line := range txn.Lines {
		fmt.Fprintf(&b, "  %s (%s) x %d @ %s = %s\n",
			line.Name, line.Size, line.Quantity,
			line.UnitPrice.StringFixed(2), line.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "Subtotal       : %s\n", txn.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Discount (%s%%) : %s\n", txn.DiscountPercent.String(), txn.DiscountAmount.StringFixed(2))
	fmt.Fprintf(&b, "Total          : %s\n", txn.Total.StringFixed(2))
	fmt.Fprintf(&b, "Items Sold     : %d\n", txn.ItemCount)
	b.WriteString("\n")
	return b.String()
}
