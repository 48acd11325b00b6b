package storage

import (
	"errors"
	"sync"

	"pos-service/internal/model"
)

// MemoryHistory is an in-process history appender. Tests use it in place
// of HistoryFile; FailNext makes the next appends fail to exercise the
// pending-persistence path.
type MemoryHistory struct {
	mu       sync.Mutex
	appended []*model.Transaction
	failNext int
}

// NewMemoryHistory returns an empty in-memory appender
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

// Append records the transaction, or fails if a failure was injected
func (m *MemoryHistory) Append(txn *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext > 0 {
		m.failNext--
		return errors.New("injected append failure")
	}
	m.appended = append(m.appended, txn)
	return nil
}

// FailNext makes the next n Append calls fail
func (m *MemoryHistory) FailNext(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = n
}

// Appended returns every transaction durably recorded, in append order
func (m *MemoryHistory) Appended() []*model.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.Transaction, len(m.appended))
	copy(out, m.appended)
	return out
}
