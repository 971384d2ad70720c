package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio-core/internal/database"
	"portfolio-core/internal/domain/profile"
)

const (
	getValueQuery = `SELECT value FROM kv_store WHERE key = $1`
	setValueQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// PostgresStorage keeps values in the kv_store table
type PostgresStorage struct {
	db *database.DB
}

var _ profile.Storage = (*PostgresStorage)(nil)

// NewPostgresStorage creates a new Postgres-backed storage
func NewPostgresStorage(db *database.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetConnection().QueryRowContext(ctx, getValueQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *PostgresStorage) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.GetConnection().ExecContext(ctx, setValueQuery, key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Ping checks the database connection
func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
