package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidType is returned when a transaction kind is neither credit nor debit.
var ErrInvalidType = errors.New("invalid transaction type")

// ErrEmptySession is returned when an operation is attempted without a session ID.
var ErrEmptySession = errors.New("empty session ID")

// Service provides the ledger operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// CreateTransaction stores a new transaction for the session. Debits are
// persisted with a negated amount.
func (s *Service) CreateTransaction(ctx context.Context, sessionID string, in CreateInput) (*Transaction, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidType, in.Type)
	}

	t := &Transaction{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Amount:    signedAmount(in.Amount, in.Type),
		Type:      in.Type,
		SessionID: sessionID,
	}

	if err := s.storage.Set(ctx, t); err != nil {
		s.logger.Error("failed to save transaction", zap.String("transaction_id", t.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.logger.Info("transaction created",
		zap.String("transaction_id", t.ID),
		zap.String("type", string(t.Type)),
		zap.Float64("amount", t.Amount),
	)
	return t, nil
}

// ListTransactions returns every transaction of the session in storage order.
func (s *Service) ListTransactions(ctx context.Context, sessionID string) ([]*Transaction, error) {
	all, err := s.storage.GetAll(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	if all == nil {
		all = make([]*Transaction, 0)
	}
	return all, nil
}

// GetTransaction returns the transaction matching both id and session.
// A missing match is not an error: it yields a nil transaction.
func (s *Service) GetTransaction(ctx context.Context, sessionID, id string) (*Transaction, error) {
	t, err := s.storage.Read(ctx, sessionID, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("failed to read transaction", zap.String("transaction_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve transaction: %w", err)
	}
	return t, nil
}

// Summary sums the signed amounts of the session.
func (s *Service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	amount, err := s.storage.Sum(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to sum transactions", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	return Summary{Amount: amount}, nil
}

func signedAmount(amount float64, kind Kind) float64 {
	if kind == KindCredit {
		return amount
	}
	return -amount
}
