package transactions

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"api_transactions/internal/config"
)

// Open builds the storage backend selected by cfg.DatabaseClient and makes sure
// its schema exists. The returned func releases the backend's resources.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (Storage, func(), error) {
	switch cfg.DatabaseClient {
	case config.ClientSQLite:
		store, err := NewSQLiteStorage(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening sqlite database: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("error creating sqlite schema: %w", err)
		}
		logger.Info("using sqlite storage", zap.String("path", cfg.DatabaseURL))
		return store, func() { _ = store.Close() }, nil

	case config.ClientPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating pgx pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("error pinging database: %w", err)
		}
		store := NewPostgresStorage(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("error creating postgres schema: %w", err)
		}
		logger.Info("using postgres storage")
		return store, pool.Close, nil

	default:
		logger.Info("using in-memory storage")
		return NewLocalStorage(), func() {}, nil
	}
}
