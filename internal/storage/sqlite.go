// Package storage provides the data persistence layer backed by SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MoneyManage/MoneyManage/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the service.Store interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a new SQLite store instance. Open failures are wrapped in
// common.ErrStoreUnavailable so callers can degrade to an empty in-memory
// ledger instead of crashing.
func NewStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("%w: creating database directory: %v", common.ErrStoreUnavailable, err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", common.ErrStoreUnavailable, err)
	}

	// SQLite doesn't benefit from multiple connections, and a single
	// connection serializes writers per the single-writer model.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: pinging database: %v", common.ErrStoreUnavailable, err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// replaceAll clears a collection and re-inserts records inside one
// transaction. A mid-write failure rolls back, so the collection is never
// left partially cleared.
func (s *SQLiteStore) replaceAll(ctx context.Context, table string, insert func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", common.ErrStoreWriteFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("%w: clearing %s: %v", common.ErrStoreWriteFailed, table, err)
	}
	if err := insert(tx); err != nil {
		return fmt.Errorf("%w: repopulating %s: %v", common.ErrStoreWriteFailed, table, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing %s: %v", common.ErrStoreWriteFailed, table, err)
	}
	return nil
}
