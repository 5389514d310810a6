package transactions

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no transaction matches the given ID and session.
var ErrNotFound = errors.New("transaction not found")

// ErrEmptyID is returned when trying to store a transaction with an empty ID.
var ErrEmptyID = errors.New("empty transaction ID")

// Storage is the main interface for our transactions storage layer.
// Every read is scoped by session ID.
type Storage interface {
	Set(ctx context.Context, t *Transaction) error
	Read(ctx context.Context, sessionID, id string) (*Transaction, error)
	GetAll(ctx context.Context, sessionID string) ([]*Transaction, error)
	Sum(ctx context.Context, sessionID string) (float64, error)
}

// LocalStorage provides an in-memory implementation for storing transactions.
type LocalStorage struct {
	mu   sync.RWMutex
	rows []*Transaction
	byID map[string]*Transaction
}

// NewLocalStorage instantiates a new LocalStorage with no rows.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		byID: map[string]*Transaction{},
	}
}

// Set appends a copy of t. Returns ErrEmptyID if the transaction has an empty ID.
func (l *LocalStorage) Set(_ context.Context, t *Transaction) error {
	if t.ID == "" {
		return ErrEmptyID
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byID[t.ID]; ok {
		return fmt.Errorf("duplicate transaction ID %q", t.ID)
	}
	row := *t
	l.rows = append(l.rows, &row)
	l.byID[row.ID] = &row
	return nil
}

// Read retrieves a transaction by ID within a session.
// Returns ErrNotFound if the ID is unknown or belongs to another session.
func (l *LocalStorage) Read(_ context.Context, sessionID, id string) (*Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.byID[id]
	if !ok || t.SessionID != sessionID {
		return nil, ErrNotFound
	}
	row := *t
	return &row, nil
}

// GetAll retrieves the session's transactions in insertion order.
func (l *LocalStorage) GetAll(_ context.Context, sessionID string) ([]*Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Transaction, 0)
	for _, t := range l.rows {
		if t.SessionID != sessionID {
			continue
		}
		row := *t
		out = append(out, &row)
	}
	return out, nil
}

// Sum adds up the signed amounts of the session.
func (l *LocalStorage) Sum(_ context.Context, sessionID string) (float64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	for _, t := range l.rows {
		if t.SessionID == sessionID {
			total = total.Add(decimal.NewFromFloat(t.Amount))
		}
	}
	return total.InexactFloat64(), nil
}
