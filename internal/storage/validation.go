package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidRecurring   = errors.New("invalid recurring transaction")
	ErrInvalidGoal        = errors.New("invalid savings goal")
	ErrInvalidBudget      = errors.New("invalid budget")
	ErrInvalidAsset       = errors.New("invalid asset")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates every record in a replacement set. An empty
// slice is valid: replacing with nothing clears the collection.
func validateTransactions(txns []model.Transaction) error {
	for i, txn := range txns {
		if err := validateTransaction(&txn); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}
	return nil
}

func validateRecurring(recs []model.RecurringTransaction) error {
	for i, rec := range recs {
		if rec.ID == "" {
			return fmt.Errorf("recurring at index %d: %w: missing ID", i, ErrInvalidRecurring)
		}
		if !rec.Frequency.Valid() {
			return fmt.Errorf("recurring at index %d: %w: unknown frequency %q", i, ErrInvalidRecurring, rec.Frequency)
		}
	}
	return nil
}

func validateGoals(goals []model.SavingsGoal) error {
	for i, goal := range goals {
		if goal.ID == "" {
			return fmt.Errorf("goal at index %d: %w: missing ID", i, ErrInvalidGoal)
		}
		if strings.TrimSpace(goal.Name) == "" {
			return fmt.Errorf("goal at index %d: %w: missing name", i, ErrInvalidGoal)
		}
	}
	return nil
}

func validateBudgets(budgets []model.Budget) error {
	for i, budget := range budgets {
		if budget.CategoryID == "" {
			return fmt.Errorf("budget at index %d: %w: missing category ID", i, ErrInvalidBudget)
		}
		if budget.Limit <= 0 {
			return fmt.Errorf("budget at index %d: %w: limit must be positive", i, ErrInvalidBudget)
		}
	}
	return nil
}

func validateAssets(assets []model.Asset) error {
	for i, asset := range assets {
		if asset.ID == "" {
			return fmt.Errorf("asset at index %d: %w: missing ID", i, ErrInvalidAsset)
		}
		if strings.TrimSpace(asset.Name) == "" {
			return fmt.Errorf("asset at index %d: %w: missing name", i, ErrInvalidAsset)
		}
	}
	return nil
}
