package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/MoneyManage/MoneyManage/internal/common"
	"github.com/MoneyManage/MoneyManage/internal/model"
)

func validateTransactionInput(txn *model.Transaction) error {
	if txn.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", common.ErrValidation)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", common.ErrValidation, txn.Type)
	}
	switch txn.Type {
	case model.TypeTransfer:
		if txn.DestinationWalletID == "" {
			return fmt.Errorf("%w: transfer requires a destination wallet", common.ErrValidation)
		}
		// Transfers carry the sentinel instead of a real category.
		txn.CategoryID = model.CategoryTransfer
	case model.TypeDebt:
		switch txn.CategoryID {
		case model.DebtCategoryBorrow, model.DebtCategoryRepay, model.DebtCategoryLoan, model.DebtCategoryCollect:
		default:
			return fmt.Errorf("%w: debt category must be one of debt/repay/loan/collect", common.ErrValidation)
		}
		if txn.Person() == "" {
			return fmt.Errorf("%w: debt requires a counterparty", common.ErrValidation)
		}
	case model.TypeIncome, model.TypeExpense:
		if txn.CategoryID == "" {
			return fmt.Errorf("%w: category is required", common.ErrValidation)
		}
	}
	if txn.Date.IsZero() {
		txn.Date = model.Today()
	}
	return nil
}

// AddTransaction validates and inserts a transaction at the head of the log
// (most recent first), assigns a fresh id when absent, then persists.
func (l *Ledger) AddTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if err := l.ensureReady(); err != nil {
		return model.Transaction{}, err
	}
	if err := validateTransactionInput(&txn); err != nil {
		return model.Transaction{}, err
	}

	if txn.ID == "" {
		txn.ID = model.NewID()
	}

	l.transactions = append([]model.Transaction{txn}, l.transactions...)
	return txn, l.flushTransactions(ctx)
}

// EditTransaction replaces the record matching id, keeping the id stable.
// An unknown id is a no-op, not an error.
func (l *Ledger) EditTransaction(ctx context.Context, id string, txn model.Transaction) error {
	if err := l.ensureReady(); err != nil {
		return err
	}
	if err := validateTransactionInput(&txn); err != nil {
		return err
	}

	for i := range l.transactions {
		if l.transactions[i].ID == id {
			txn.ID = id
			l.transactions[i] = txn
			return l.flushTransactions(ctx)
		}
	}
	return nil
}

// RemoveTransaction deletes by id. An unknown id is a no-op.
func (l *Ledger) RemoveTransaction(ctx context.Context, id string) error {
	if err := l.ensureReady(); err != nil {
		return err
	}

	for i := range l.transactions {
		if l.transactions[i].ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return l.flushTransactions(ctx)
		}
	}
	return nil
}

// PayDebt records a repayment to a counterparty as a fresh debt transaction
// from the given wallet.
func (l *Ledger) PayDebt(ctx context.Context, person string, amount float64, walletID string) (model.Transaction, error) {
	person = strings.TrimSpace(person)
	if person == "" {
		return model.Transaction{}, fmt.Errorf("%w: counterparty is required", common.ErrValidation)
	}
	if walletID == "" {
		walletID = model.WalletCash
	}

	return l.AddTransaction(ctx, model.Transaction{
		Amount:     amount,
		CategoryID: model.DebtCategoryRepay,
		Type:       model.TypeDebt,
		Date:       model.Today(),
		Note:       fmt.Sprintf("Repayment to %s", person),
		WithPerson: person,
		WalletID:   walletID,
	})
}
