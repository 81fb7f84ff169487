package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MoneyManage/MoneyManage/internal/backup"
	"github.com/MoneyManage/MoneyManage/internal/model"
)

// Snapshot captures every collection for backup. The returned snapshot holds
// copies, so later mutations do not leak into an in-flight backup.
func (l *Ledger) Snapshot() backup.Snapshot {
	txns := append([]model.Transaction(nil), l.transactions...)
	cats := l.categories
	cats.Expense = append([]model.CategoryItem(nil), l.categories.Expense...)
	cats.Income = append([]model.CategoryItem(nil), l.categories.Income...)
	cats.Debt = append([]model.CategoryItem(nil), l.categories.Debt...)
	goals := append([]model.SavingsGoal(nil), l.goals...)
	recs := append([]model.RecurringTransaction(nil), l.recurring...)
	budgets := append([]model.Budget(nil), l.budgets...)
	assets := append([]model.Asset(nil), l.assets...)

	return backup.Snapshot{
		Transactions: &txns,
		Categories:   &cats,
		Goals:        &goals,
		Recurring:    &recs,
		Budgets:      &budgets,
		Assets:       &assets,
	}
}

// Restore replaces collections wholesale from a decoded snapshot. Each
// present key fully replaces its collection; absent keys are untouched.
// Every affected collection is flushed; flush failures are collected into a
// single warning rather than aborting the remaining collections, since the
// in-memory state has already changed.
func (l *Ledger) Restore(ctx context.Context, snap *backup.Snapshot) error {
	return l.RestoreWithProgress(ctx, snap, nil)
}

// RestoreWithProgress is Restore with a callback invoked after each present
// collection has been applied and flushed. A nil step is allowed.
func (l *Ledger) RestoreWithProgress(ctx context.Context, snap *backup.Snapshot, step func(collection string)) error {
	if err := l.ensureReady(); err != nil {
		return err
	}
	if step == nil {
		step = func(string) {}
	}

	var flushErrs []error

	if snap.Transactions != nil {
		l.transactions = *snap.Transactions
		flushErrs = append(flushErrs, l.flushTransactions(ctx))
		step("transactions")
	}
	if snap.Categories != nil {
		l.categories = *snap.Categories
		flushErrs = append(flushErrs, l.flushCategories(ctx))
		step("categories")
	}
	if snap.Goals != nil {
		goals := *snap.Goals
		// Never trust persisted status; the invariant is recomputed.
		for i := range goals {
			goals[i].Reconcile()
		}
		l.goals = goals
		flushErrs = append(flushErrs, l.flushGoals(ctx))
		step("goals")
	}
	if snap.Recurring != nil {
		l.recurring = *snap.Recurring
		flushErrs = append(flushErrs, l.flushRecurring(ctx))
		step("recurring")
	}
	if snap.Budgets != nil {
		l.budgets = *snap.Budgets
		flushErrs = append(flushErrs, l.flushBudgets(ctx))
		step("budgets")
	}
	if snap.Assets != nil {
		l.assets = *snap.Assets
		flushErrs = append(flushErrs, l.flushAssets(ctx))
		step("assets")
	}

	slog.Info("restored snapshot",
		"transactions", snap.Transactions != nil,
		"categories", snap.Categories != nil,
		"goals", snap.Goals != nil,
		"recurring", snap.Recurring != nil,
		"budgets", snap.Budgets != nil,
		"assets", snap.Assets != nil)

	return errors.Join(flushErrs...)
}

// ImportTransactions prepends externally sourced transactions to the log,
// leaving existing records in place.
func (l *Ledger) ImportTransactions(ctx context.Context, txns []model.Transaction) error {
	if err := l.ensureReady(); err != nil {
		return err
	}
	if len(txns) == 0 {
		return nil
	}

	for i := range txns {
		if txns[i].ID == "" {
			txns[i].ID = model.NewID()
		}
	}

	l.transactions = append(append([]model.Transaction(nil), txns...), l.transactions...)
	return l.flushTransactions(ctx)
}
