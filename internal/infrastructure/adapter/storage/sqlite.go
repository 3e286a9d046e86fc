package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	errs "pocket-wallet/internal/domain/error"
	"pocket-wallet/internal/domain/port/persistence"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteStore persists the key-value space in a single local database file,
// the device-scoped equivalent of an origin-scoped browser store. The driver
// is pure Go; no server or cgo is involved.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens (or creates) the database file and ensures the schema
// exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}

	return s, nil
}

var _ persistence.KeyValueStore = (*SQLiteStore)(nil)

func (s *SQLiteStore) migrate() error {
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS kv_records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Get retrieves the value stored under key
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.conn.QueryRowContext(ctx, "SELECT value FROM kv_records WHERE key = ?", key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO kv_records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	return err
}

// Delete removes the key; absent keys are ignored
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM kv_records WHERE key = ?", key)
	return err
}

// Close closes the underlying database connection
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
