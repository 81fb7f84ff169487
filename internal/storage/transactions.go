package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// GetTransactions returns every transaction in ledger order (slice position
// at last save). An empty collection yields an empty slice, not an error.
func (s *SQLiteStore) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, type, category_id, amount, wallet_id, destination_wallet_id, note, with_person
		FROM transactions
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	txns := []model.Transaction{}
	for rows.Next() {
		var txn model.Transaction
		var date string
		var wallet, destWallet, note, person sql.NullString
		if err := rows.Scan(&txn.ID, &date, &txn.Type, &txn.CategoryID, &txn.Amount,
			&wallet, &destWallet, &note, &person); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if txn.Date, err = model.ParseDate(date); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", txn.ID, err)
		}
		txn.WalletID = wallet.String
		txn.DestinationWalletID = destWallet.String
		txn.Note = note.String
		txn.WithPerson = person.String
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("retrieved transactions", "count", len(txns))
	return txns, nil
}

// ReplaceTransactions atomically swaps the whole transaction collection.
func (s *SQLiteStore) ReplaceTransactions(ctx context.Context, txns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(txns); err != nil {
		return err
	}

	return s.replaceAll(ctx, "transactions", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO transactions (
				id, date, type, category_id, amount,
				wallet_id, destination_wallet_id, note, with_person, position
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for i, txn := range txns {
			if _, err := stmt.ExecContext(ctx,
				txn.ID,
				txn.Date.String(),
				string(txn.Type),
				txn.CategoryID,
				txn.Amount,
				txn.WalletID,
				txn.DestinationWalletID,
				txn.Note,
				txn.WithPerson,
				i,
			); err != nil {
				return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
			}
		}
		return nil
	})
}
