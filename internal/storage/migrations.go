package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. Migrations are additive only: they create missing collections and
// never rewrite or drop existing rows.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial collections",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					date TEXT NOT NULL,
					type TEXT NOT NULL,
					category_id TEXT NOT NULL,
					amount REAL NOT NULL,
					wallet_id TEXT,
					destination_wallet_id TEXT,
					note TEXT,
					with_person TEXT,
					position INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type)`,

				`CREATE TABLE IF NOT EXISTS recurring (
					id TEXT PRIMARY KEY,
					amount REAL NOT NULL,
					category_id TEXT NOT NULL,
					type TEXT NOT NULL,
					frequency TEXT NOT NULL,
					start_date TEXT NOT NULL,
					next_due_date TEXT NOT NULL,
					wallet_id TEXT,
					note TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS goals (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					target_amount REAL NOT NULL,
					current_amount REAL NOT NULL DEFAULT 0,
					icon TEXT,
					color TEXT,
					deadline TEXT,
					status TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS budgets (
					category_id TEXT PRIMARY KEY,
					limit_amount REAL NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS assets (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					value REAL NOT NULL,
					type TEXT NOT NULL,
					note TEXT,
					updated_at DATETIME NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS metadata (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add advice cache collection",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS advice_cache (
					id TEXT PRIMARY KEY,
					question TEXT NOT NULL,
					answer TEXT NOT NULL,
					created_at DATETIME NOT NULL
				)
			`)
			return err
		},
	},
}

// Migrate runs any pending schema migrations. Each migration runs in its own
// transaction and bumps PRAGMA user_version on success.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	if current > ExpectedSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than expected %d", current, ExpectedSchemaVersion)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", txErr)
		}

		if upErr := m.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, upErr)
		}

		if _, verErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); verErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", m.Version, verErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, commitErr)
		}

		slog.Info("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}

func (s *SQLiteStore) schemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
