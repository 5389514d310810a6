package transactions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('credit', 'debit')),
		session_id TEXT NOT NULL
	)`

const createSessionIndexSQL = `CREATE INDEX IF NOT EXISTS transactions_session_id_idx ON transactions (session_id)`

// PostgresStorage keeps transactions in a Postgres table.
type PostgresStorage struct {
	Pool *pgxpool.Pool
}

// NewPostgresStorage wraps an open pool.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{Pool: pool}
}

// EnsureSchema creates the transactions table when it is missing.
func (p *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := p.Pool.Exec(ctx, createTableSQL); err != nil {
		return err
	}
	_, err := p.Pool.Exec(ctx, createSessionIndexSQL)
	return err
}

// Set inserts t. Returns ErrEmptyID if the transaction has an empty ID.
func (p *PostgresStorage) Set(ctx context.Context, t *Transaction) error {
	if t.ID == "" {
		return ErrEmptyID
	}
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO transactions (id, title, amount, type, session_id)
		VALUES ($1, $2, $3, $4, $5)
	`, t.ID, t.Title, t.Amount, string(t.Type), t.SessionID)
	return err
}

// Read retrieves a transaction by ID within a session.
// Returns ErrNotFound if no row matches both.
func (p *PostgresStorage) Read(ctx context.Context, sessionID, id string) (*Transaction, error) {
	var t Transaction
	err := p.Pool.QueryRow(ctx, `
		SELECT id, title, amount::float8, type, session_id
		FROM transactions
		WHERE session_id = $1 AND id = $2
		LIMIT 1
	`, sessionID, id).Scan(&t.ID, &t.Title, &t.Amount, &t.Type, &t.SessionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAll retrieves every transaction of the session.
func (p *PostgresStorage) GetAll(ctx context.Context, sessionID string) ([]*Transaction, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT id, title, amount::float8, type, session_id
		FROM transactions
		WHERE session_id = $1
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.Type, &t.SessionID); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Sum adds up the signed amounts of the session, 0 when it has none.
func (p *PostgresStorage) Sum(ctx context.Context, sessionID string) (float64, error) {
	var total float64
	err := p.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)::float8
		FROM transactions
		WHERE session_id = $1
	`, sessionID).Scan(&total)
	return total, err
}
