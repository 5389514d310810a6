package transactions

import (
	"context"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteStorage keeps transactions in a SQLite file through gorm.
type SQLiteStorage struct {
	db *gorm.DB
}

// NewSQLiteStorage opens (or creates) the database file at path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return &SQLiteStorage{db: db}, nil
}

// EnsureSchema creates the transactions table when it is missing.
func (s *SQLiteStorage) EnsureSchema(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Exec(createTableSQL).Error; err != nil {
		return err
	}
	return db.Exec(createSessionIndexSQL).Error
}

// Close releases the underlying database handle.
func (s *SQLiteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Set inserts a copy of t. Returns ErrEmptyID if the transaction has an empty ID.
func (s *SQLiteStorage) Set(ctx context.Context, t *Transaction) error {
	if t.ID == "" {
		return ErrEmptyID
	}
	row := *t
	return s.db.WithContext(ctx).Create(&row).Error
}

// Read retrieves a transaction by ID within a session.
// Returns ErrNotFound if no row matches both.
func (s *SQLiteStorage) Read(ctx context.Context, sessionID, id string) (*Transaction, error) {
	var t Transaction
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND id = ?", sessionID, id).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAll retrieves the session's transactions in rowid order.
func (s *SQLiteStorage) GetAll(ctx context.Context, sessionID string) ([]*Transaction, error) {
	out := make([]*Transaction, 0)
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Sum adds up the signed amounts of the session, 0 when it has none.
func (s *SQLiteStorage) Sum(ctx context.Context, sessionID string) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("session_id = ?", sessionID).
		Scan(&total).Error
	return total, err
}
