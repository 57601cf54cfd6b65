// Package sqlkv implements the key-value port on a SQL table. It runs on
// PostgreSQL (lib/pq) and SQLite (mattn/go-sqlite3).
package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
    name       TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`

// Open connects to the database and creates the table when missing.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if driver == DriverSQLite {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// a single writer keeps transactions from hitting SQLITE_BUSY
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable wal: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	query := s.db.Rebind(`SELECT value FROM kv_store WHERE name = ?`)

	var value string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	query := s.db.Rebind(`
		INSERT INTO kv_store (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, key, value, s.now().UTC())
	return err
}

func (s *Store) Remove(ctx context.Context, key string) error {
	query := s.db.Rebind(`DELETE FROM kv_store WHERE name = ?`)
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, key)
	return err
}

// Keys lists stored keys in name order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &keys, `SELECT name FROM kv_store ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return keys, nil
}
