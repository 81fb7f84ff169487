package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/common"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRecurringDerivesNextDue(t *testing.T) {
	l := testutil.SetupTestLedger(t)

	saved, err := l.AddRecurring(context.Background(), model.RecurringTransaction{
		Amount:     4000000,
		CategoryID: "rent",
		Type:       model.TypeExpense,
		Frequency:  model.FrequencyMonthly,
		StartDate:  model.NewDate(2025, time.June, 1),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.True(t, saved.NextDueDate.Equal(model.NewDate(2025, time.July, 1)))
}

func TestAddRecurringValidation(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	_, err := l.AddRecurring(ctx, model.RecurringTransaction{
		Amount: 0, CategoryID: "rent", Frequency: model.FrequencyMonthly,
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = l.AddRecurring(ctx, model.RecurringTransaction{
		Amount: 100, CategoryID: "rent", Frequency: "hourly",
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestGoalLifecycle(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	goal, err := l.AddGoal(ctx, model.SavingsGoal{
		Name:         "Emergency fund",
		TargetAmount: 1000,
		Status:       model.GoalCompleted, // lies are reconciled away
	})
	require.NoError(t, err)
	assert.Equal(t, model.GoalActive, goal.Status)

	t.Run("deposit accumulates and reconciles", func(t *testing.T) {
		updated, depositErr := l.Deposit(ctx, goal.ID, 400)
		require.NoError(t, depositErr)
		assert.Equal(t, 400.0, updated.CurrentAmount)
		assert.Equal(t, model.GoalActive, updated.Status)

		updated, depositErr = l.Deposit(ctx, goal.ID, 600)
		require.NoError(t, depositErr)
		assert.Equal(t, 1000.0, updated.CurrentAmount)
		assert.Equal(t, model.GoalCompleted, updated.Status, "status flips exactly when the target is reached")
	})

	t.Run("deposit on unknown goal errors", func(t *testing.T) {
		_, depositErr := l.Deposit(ctx, "missing", 100)
		assert.ErrorIs(t, depositErr, common.ErrNotFound)
	})

	t.Run("non-positive deposits are rejected", func(t *testing.T) {
		_, depositErr := l.Deposit(ctx, goal.ID, 0)
		assert.ErrorIs(t, depositErr, common.ErrValidation)
		_, depositErr = l.Deposit(ctx, goal.ID, -50)
		assert.ErrorIs(t, depositErr, common.ErrValidation)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, l.RemoveGoal(ctx, goal.ID))
		assert.Empty(t, l.Goals())
		require.NoError(t, l.RemoveGoal(ctx, goal.ID), "second remove is a no-op")
	})
}

func TestSetBudgetUpserts(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	require.NoError(t, l.SetBudget(ctx, "food", 1000000))
	require.NoError(t, l.SetBudget(ctx, "food", 1500000))

	budgets := l.Budgets()
	require.Len(t, budgets, 1, "setting twice leaves one budget per category")
	assert.Equal(t, 1500000.0, budgets[0].Limit)

	require.NoError(t, l.SetBudget(ctx, "transport", 500000))
	assert.Len(t, l.Budgets(), 2)
}

func TestSetBudgetValidation(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	assert.ErrorIs(t, l.SetBudget(ctx, "", 100), common.ErrValidation)
	assert.ErrorIs(t, l.SetBudget(ctx, "food", 0), common.ErrValidation)
	assert.ErrorIs(t, l.SetBudget(ctx, "food", -5), common.ErrValidation)
}

func TestRemoveBudget(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	require.NoError(t, l.SetBudget(ctx, "food", 1000000))
	require.NoError(t, l.RemoveBudget(ctx, "food"))
	assert.Empty(t, l.Budgets())
	require.NoError(t, l.RemoveBudget(ctx, "food"), "unknown category is a no-op")
}

func TestAssetLifecycle(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	asset, err := l.AddAsset(ctx, model.Asset{Name: "Gold ring", Type: model.AssetGold, Value: 15000000})
	require.NoError(t, err)
	assert.NotEmpty(t, asset.ID)
	assert.False(t, asset.UpdatedAt.IsZero())

	t.Run("edit stamps update time and keeps id", func(t *testing.T) {
		before := asset.UpdatedAt
		time.Sleep(5 * time.Millisecond)

		updated := asset
		updated.Value = 16000000
		require.NoError(t, l.EditAsset(ctx, asset.ID, updated))

		assets := l.Assets()
		require.Len(t, assets, 1)
		assert.Equal(t, asset.ID, assets[0].ID)
		assert.Equal(t, 16000000.0, assets[0].Value)
		assert.True(t, assets[0].UpdatedAt.After(before))
	})

	t.Run("edit unknown id is a no-op", func(t *testing.T) {
		require.NoError(t, l.EditAsset(ctx, "missing", asset))
		assert.Len(t, l.Assets(), 1)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, l.RemoveAsset(ctx, asset.ID))
		assert.Empty(t, l.Assets())
	})
}

func TestAddAssetValidation(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	_, err := l.AddAsset(ctx, model.Asset{Name: "", Type: model.AssetGold, Value: 5})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = l.AddAsset(ctx, model.Asset{Name: "x", Type: model.AssetGold, Value: -5})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = l.AddAsset(ctx, model.Asset{Name: "x", Type: "yacht", Value: 5})
	assert.ErrorIs(t, err, common.ErrValidation)
}
