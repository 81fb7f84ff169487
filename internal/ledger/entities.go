package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/common"
	"github.com/MoneyManage/MoneyManage/internal/model"
)

// AddRecurring validates and appends a recurring template. NextDueDate is
// derived from the start date when unset.
func (l *Ledger) AddRecurring(ctx context.Context, rec model.RecurringTransaction) (model.RecurringTransaction, error) {
	if err := l.ensureReady(); err != nil {
		return model.RecurringTransaction{}, err
	}
	if rec.Amount <= 0 {
		return model.RecurringTransaction{}, fmt.Errorf("%w: amount must be positive", common.ErrValidation)
	}
	if rec.CategoryID == "" {
		return model.RecurringTransaction{}, fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	if !rec.Frequency.Valid() {
		return model.RecurringTransaction{}, fmt.Errorf("%w: unknown frequency %q", common.ErrValidation, rec.Frequency)
	}

	if rec.ID == "" {
		rec.ID = model.NewID()
	}
	if rec.StartDate.IsZero() {
		rec.StartDate = model.Today()
	}
	if rec.NextDueDate.IsZero() {
		rec.NextDueDate = rec.Frequency.NextDue(rec.StartDate)
	}

	l.recurring = append(l.recurring, rec)
	return rec, l.flushRecurring(ctx)
}

// RemoveRecurring deletes a template by id. An unknown id is a no-op.
func (l *Ledger) RemoveRecurring(ctx context.Context, id string) error {
	if err := l.ensureReady(); err != nil {
		return err
	}

	for i := range l.recurring {
		if l.recurring[i].ID == id {
			l.recurring = append(l.recurring[:i], l.recurring[i+1:]...)
			return l.flushRecurring(ctx)
		}
	}
	return nil
}

// AddGoal validates and appends a savings goal. Completion status is
// reconciled from the amounts, never trusted from the caller.
func (l *Ledger) AddGoal(ctx context.Context, goal model.SavingsGoal) (model.SavingsGoal, error) {
	if err := l.ensureReady(); err != nil {
		return model.SavingsGoal{}, err
	}
	if strings.TrimSpace(goal.Name) == "" {
		return model.SavingsGoal{}, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if goal.TargetAmount <= 0 {
		return model.SavingsGoal{}, fmt.Errorf("%w: target amount must be positive", common.ErrValidation)
	}
	if goal.CurrentAmount < 0 {
		return model.SavingsGoal{}, fmt.Errorf("%w: current amount cannot be negative", common.ErrValidation)
	}

	if goal.ID == "" {
		goal.ID = model.NewID()
	}
	goal.Reconcile()

	l.goals = append(l.goals, goal)
	return goal, l.flushGoals(ctx)
}

// Deposit increases a goal's saved amount. There is no withdrawal operation;
// deposits are monotonic. Status is reconciled after every call.
func (l *Ledger) Deposit(ctx context.Context, goalID string, amount float64) (model.SavingsGoal, error) {
	if err := l.ensureReady(); err != nil {
		return model.SavingsGoal{}, err
	}
	if amount <= 0 {
		return model.SavingsGoal{}, fmt.Errorf("%w: deposit must be positive", common.ErrValidation)
	}

	for i := range l.goals {
		if l.goals[i].ID == goalID {
			l.goals[i].CurrentAmount += amount
			l.goals[i].Reconcile()
			goal := l.goals[i]
			return goal, l.flushGoals(ctx)
		}
	}
	return model.SavingsGoal{}, fmt.Errorf("goal %s: %w", goalID, common.ErrNotFound)
}

// RemoveGoal deletes a goal by id. An unknown id is a no-op.
func (l *Ledger) RemoveGoal(ctx context.Context, id string) error {
	if err := l.ensureReady(); err != nil {
		return err
	}

	for i := range l.goals {
		if l.goals[i].ID == id {
			l.goals = append(l.goals[:i], l.goals[i+1:]...)
			return l.flushGoals(ctx)
		}
	}
	return nil
}

// SetBudget upserts the budget for a category: replace when one exists,
// insert otherwise. Budgets are the one collection keyed by a semantic field
// rather than a generated id.
func (l *Ledger) SetBudget(ctx context.Context, categoryID string, limit float64) error {
	if err := l.ensureReady(); err != nil {
		return err
	}
	if categoryID == "" {
		return fmt.Errorf("%w: category is required", common.ErrValidation)
	}
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", common.ErrValidation)
	}

	for i := range l.budgets {
		if l.budgets[i].CategoryID == categoryID {
			l.budgets[i].Limit = limit
			return l.flushBudgets(ctx)
		}
	}

	l.budgets = append(l.budgets, model.Budget{CategoryID: categoryID, Limit: limit})
	return l.flushBudgets(ctx)
}

// RemoveBudget deletes the budget for a category. An unknown id is a no-op.
func (l *Ledger) RemoveBudget(ctx context.Context, categoryID string) error {
	if err := l.ensureReady(); err != nil {
		return err
	}

	for i := range l.budgets {
		if l.budgets[i].CategoryID == categoryID {
			l.budgets = append(l.budgets[:i], l.budgets[i+1:]...)
			return l.flushBudgets(ctx)
		}
	}
	return nil
}

// AddAsset validates and appends an asset snapshot.
func (l *Ledger) AddAsset(ctx context.Context, asset model.Asset) (model.Asset, error) {
	if err := l.ensureReady(); err != nil {
		return model.Asset{}, err
	}
	if strings.TrimSpace(asset.Name) == "" {
		return model.Asset{}, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if asset.Value < 0 {
		return model.Asset{}, fmt.Errorf("%w: value cannot be negative", common.ErrValidation)
	}
	if !asset.Type.Valid() {
		return model.Asset{}, fmt.Errorf("%w: unknown asset type %q", common.ErrValidation, asset.Type)
	}

	if asset.ID == "" {
		asset.ID = model.NewID()
	}
	asset.UpdatedAt = time.Now()

	l.assets = append(l.assets, asset)
	return asset, l.flushAssets(ctx)
}

// EditAsset replaces the asset matching id and stamps the update time.
// An unknown id is a no-op.
func (l *Ledger) EditAsset(ctx context.Context, id string, asset model.Asset) error {
	if err := l.ensureReady(); err != nil {
		return err
	}
	if asset.Value < 0 {
		return fmt.Errorf("%w: value cannot be negative", common.ErrValidation)
	}

	for i := range l.assets {
		if l.assets[i].ID == id {
			asset.ID = id
			asset.UpdatedAt = time.Now()
			l.assets[i] = asset
			return l.flushAssets(ctx)
		}
	}
	return nil
}

// RemoveAsset deletes an asset by id. An unknown id is a no-op.
func (l *Ledger) RemoveAsset(ctx context.Context, id string) error {
	if err := l.ensureReady(); err != nil {
		return err
	}

	for i := range l.assets {
		if l.assets[i].ID == id {
			l.assets = append(l.assets[:i], l.assets[i+1:]...)
			return l.flushAssets(ctx)
		}
	}
	return nil
}
