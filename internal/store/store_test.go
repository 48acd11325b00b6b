package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-service/internal/model"
	"pos-service/pkg/storage"
)

func testTxn(id string, at time.Time, total string, items int) *model.Transaction {
	totalDec := decimal.RequireFromString(total)
	return &model.Transaction{
		ID:              id,
		AttemptID:       uuid.New(),
		Timestamp:       at,
		Subtotal:        totalDec,
		DiscountPercent: decimal.Zero,
		DiscountAmount:  decimal.Zero,
		Total:           totalDec,
		ItemCount:       items,
		Cashier:         model.AnonymousCashier,
	}
}

func TestNextIDFormat(t *testing.T) {
	s := NewStore(storage.NewMemoryHistory())
	at := time.Date(2026, 8, 30, 14, 3, 22, 0, time.Local)

	assert.Equal(t, "TXN-20260830-0001", s.NextID(at))
	assert.Equal(t, "TXN-20260830-0002", s.NextID(at))
	assert.Equal(t, 3, s.Sequence())
}

func TestAppend(t *testing.T) {
	history := storage.NewMemoryHistory()
	s := NewStore(history)

	txn := testTxn("TXN-20260830-0001", time.Now(), "72.90", 3)
	require.NoError(t, s.Append(txn))

	assert.Equal(t, 1, s.Count())
	require.Len(t, history.Appended(), 1)
	assert.Equal(t, txn.ID, history.Appended()[0].ID)
}

func TestAppendIgnoresDuplicateAttempt(t *testing.T) {
	history := storage.NewMemoryHistory()
	s := NewStore(history)

	txn := testTxn("TXN-20260830-0001", time.Now(), "72.90", 3)
	require.NoError(t, s.Append(txn))
	require.NoError(t, s.Append(txn))

	assert.Equal(t, 1, s.Count())
	assert.Len(t, history.Appended(), 1)
}

func TestAppendKeepsCommitOnDurableFailure(t *testing.T) {
	history := storage.NewMemoryHistory()
	history.FailNext(1)
	s := NewStore(history)

	txn := testTxn("TXN-20260830-0001", time.Now(), "72.90", 3)
	err := s.Append(txn)

	var perr *model.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, s.Count(), "in-memory commit must stand")
	assert.Empty(t, history.Appended())
	assert.Equal(t, 1, s.PendingCount())
}

func TestRetryPending(t *testing.T) {
	history := storage.NewMemoryHistory()
	history.FailNext(1)
	s := NewStore(history)

	txn := testTxn("TXN-20260830-0001", time.Now(), "72.90", 3)
	require.Error(t, s.Append(txn))

	require.NoError(t, s.RetryPending())
	assert.Equal(t, 0, s.PendingCount())
	require.Len(t, history.Appended(), 1)

	// A second retry pass has nothing to write
	require.NoError(t, s.RetryPending())
	assert.Len(t, history.Appended(), 1)
}

func TestTransactionsCommitOrder(t *testing.T) {
	s := NewStore(storage.NewMemoryHistory())
	for i := 1; i <= 3; i++ {
		id := fmt.Sprintf("TXN-20260830-%04d", i)
		require.NoError(t, s.Append(testTxn(id, time.Now(), "10.00", 1)))
	}

	txns := s.Transactions()
	require.Len(t, txns, 3)
	for i, txn := range txns {
		assert.Equal(t, fmt.Sprintf("TXN-20260830-%04d", i+1), txn.ID)
	}
}
