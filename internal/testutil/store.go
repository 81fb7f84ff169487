// Package testutil provides test harnesses for the persistence and ledger
// layers: in-memory stores, ready ledgers, and fixture builders.
package testutil

import (
	"context"
	"testing"

	"github.com/MoneyManage/MoneyManage/internal/ledger"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/storage"
)

// SetupTestStore creates a migrated in-memory SQLite store with automatic
// cleanup.
func SetupTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	store, err := storage.NewStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SetupTestLedger creates a Ready ledger over a fresh in-memory store.
func SetupTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	store := SetupTestStore(t)
	l := ledger.New(store)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	return l
}

// SetupDetachedLedger creates a Ready ledger with no durable store, the
// degraded mode used when the store cannot be opened.
func SetupDetachedLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	l := ledger.New(nil)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("failed to load detached ledger: %v", err)
	}
	return l
}

// Expense builds an expense transaction fixture.
func Expense(id, categoryID string, amount float64, date model.Date) model.Transaction {
	return model.Transaction{
		ID:         id,
		Type:       model.TypeExpense,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
		WalletID:   model.WalletCash,
	}
}

// Income builds an income transaction fixture.
func Income(id, categoryID string, amount float64, date model.Date) model.Transaction {
	return model.Transaction{
		ID:         id,
		Type:       model.TypeIncome,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
		WalletID:   model.WalletCash,
	}
}

// Debt builds a debt transaction fixture with the given direction category.
func Debt(id, directionCategory, person string, amount float64, date model.Date) model.Transaction {
	return model.Transaction{
		ID:         id,
		Type:       model.TypeDebt,
		CategoryID: directionCategory,
		Amount:     amount,
		Date:       date,
		WithPerson: person,
		WalletID:   model.WalletCash,
	}
}

// Transfer builds a wallet-to-wallet transfer fixture.
func Transfer(id, from, to string, amount float64, date model.Date) model.Transaction {
	return model.Transaction{
		ID:                  id,
		Type:                model.TypeTransfer,
		CategoryID:          model.CategoryTransfer,
		Amount:              amount,
		Date:                date,
		WalletID:            from,
		DestinationWalletID: to,
	}
}
