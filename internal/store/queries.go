package store

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pos-service/internal/model"
)

// Summary aggregates the full history. It is recomputed on demand from
// the transaction list so it can never drift from the records themselves.
type Summary struct {
	TotalRevenue     decimal.Decimal
	TotalItemsSold   int
	TransactionCount int
}

// Queries exposes the read-only reporting surface over the history.
type Queries struct {
	store *Store
}

// NewQueries wraps a store for reporting
func NewQueries(s *Store) *Queries {
	return &Queries{store: s}
}

// FindByID looks up one transaction by identifier, case-insensitively
func (q *Queries) FindByID(id string) (*model.Transaction, error) {
	for _, txn := range q.store.Transactions() {
		if strings.EqualFold(txn.ID, id) {
			return txn, nil
		}
	}
	return nil, &model.NotFoundError{Kind: "transaction", Key: id}
}

// FindByDate returns all transactions committed on the given calendar
// day, in commit order
func (q *Queries) FindByDate(date time.Time) []*model.Transaction {
	y, m, d := date.Date()
	var out []*model.Transaction
	for _, txn := range q.store.Transactions() {
		ty, tm, td := txn.Timestamp.Date()
		if ty == y && tm == m && td == d {
			out = append(out, txn)
		}
	}
	return out
}

// FindByAmountRange returns all transactions whose final total falls in
// [min, max], in commit order
func (q *Queries) FindByAmountRange(min, max decimal.Decimal) []*model.Transaction {
	var out []*model.Transaction
	for _, txn := range q.store.Transactions() {
		if txn.Total.GreaterThanOrEqual(min) && txn.Total.LessThanOrEqual(max) {
			out = append(out, txn)
		}
	}
	return out
}

// Aggregate sums revenue, items sold and transaction count over the full
// history in one pass
func (q *Queries) Aggregate() Summary {
	summary := Summary{TotalRevenue: decimal.Zero}
	for _, txn := range q.store.Transactions() {
		summary.TotalRevenue = summary.TotalRevenue.Add(txn.Total)
		summary.TotalItemsSold += txn.ItemCount
		summary.TransactionCount++
	}
	return summary
}
