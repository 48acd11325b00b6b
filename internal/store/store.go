package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pos-service/internal/model"
	"pos-service/pkg/logger"
	"pos-service/prometheus"
)

// HistoryAppender is the durable persistence port for committed
// transactions. Append must write the whole record or fail; it is never
// called twice for a transaction that already persisted.
type HistoryAppender interface {
	Append(txn *model.Transaction) error
}

// Store is the append-only transaction history plus the process-wide
// sequence counter. The counter starts at 1 and advances only on
// successful commits; it is an explicit field here, not ambient state.
type Store struct {
	mu       sync.Mutex
	history  HistoryAppender
	txns     []*model.Transaction
	appended map[uuid.UUID]bool
	pending  []*model.Transaction
	seq      int
}

// NewStore returns an empty store writing durable records through the
// given appender.
func NewStore(history HistoryAppender) *Store {
	return &Store{
		history:  history,
		appended: make(map[uuid.UUID]bool),
		seq:      1,
	}
}

// NextID consumes the sequence counter and formats the transaction
// identifier for a commit happening at the given instant.
func (s *Store) NextID(at time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("TXN-%s-%04d", at.Format("20060102"), s.seq)
	s.seq++
	return id
}

// Append records a committed transaction: exactly one addition to the
// in-memory history and exactly one durable append. A repeated call for
// the same attempt is ignored, so no transaction can ever be saved twice.
// A durable-write failure leaves the in-memory record in place and is
// reported to the caller; the record stays queued for RetryPending.
func (s *Store) Append(txn *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.GetLogger()
	if s.appended[txn.AttemptID] {
		log.Warn("Duplicate append ignored",
			zap.String("transaction_id", txn.ID),
			zap.String("attempt_id", txn.AttemptID.String()))
		return nil
	}
	s.appended[txn.AttemptID] = true
	s.txns = append(s.txns, txn)

	if err := s.history.Append(txn); err != nil {
		log.Error("Durable append failed, transaction held in memory",
			zap.String("transaction_id", txn.ID),
			zap.Error(err))
		prometheus.RecordPersistenceFailure("history_append")
		s.pending = append(s.pending, txn)
		return &model.PersistenceError{Op: "append", Path: "sales history", Err: err}
	}
	return nil
}

// RetryPending re-attempts the durable append for transactions whose
// earlier write failed. Successful writes leave the pending queue; a
// transaction is never re-written after one success.
func (s *Store) RetryPending() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var still []*model.Transaction
	var firstErr error
	for _, txn := range s.pending {
		if err := s.history.Append(txn); err != nil {
			if firstErr == nil {
				firstErr = &model.PersistenceError{Op: "append", Path: "sales history", Err: err}
			}
			still = append(still, txn)
			continue
		}
		logger.GetLogger().Info("Pending transaction persisted",
			zap.String("transaction_id", txn.ID))
	}
	s.pending = still
	return firstErr
}

// Transactions returns the history in commit order
func (s *Store) Transactions() []*model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Count returns the number of committed transactions
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txns)
}

// Sequence returns the next unassigned sequence number
func (s *Store) Sequence() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// PendingCount returns how many committed transactions still await a
// durable write
func (s *Store) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
