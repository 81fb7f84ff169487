package storage

import (
	"context"
	"testing"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewStore("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrateIdempotent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	version, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestReplaceTransactionsRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	txns := []model.Transaction{
		{
			ID:         "t2",
			Amount:     50000,
			CategoryID: "food",
			Date:       model.NewDate(2025, time.June, 2),
			Type:       model.TypeExpense,
			WalletID:   model.WalletCash,
			Note:       "lunch",
		},
		{
			ID:                  "t1",
			Amount:              200000,
			CategoryID:          model.CategoryTransfer,
			Date:                model.NewDate(2025, time.June, 1),
			Type:                model.TypeTransfer,
			WalletID:            model.WalletCash,
			DestinationWalletID: model.WalletATM,
		},
	}

	require.NoError(t, store.ReplaceTransactions(ctx, txns))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, txns, got, "read-back preserves the ledger's order and every field")
}

func TestReplaceTransactionsIsTotal(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := []model.Transaction{
		{ID: "t1", Amount: 100, CategoryID: "food", Date: model.NewDate(2025, time.June, 1), Type: model.TypeExpense},
		{ID: "t2", Amount: 200, CategoryID: "food", Date: model.NewDate(2025, time.June, 2), Type: model.TypeExpense},
	}
	require.NoError(t, store.ReplaceTransactions(ctx, first))

	second := []model.Transaction{
		{ID: "t3", Amount: 300, CategoryID: "travel", Date: model.NewDate(2025, time.June, 3), Type: model.TypeExpense},
	}
	require.NoError(t, store.ReplaceTransactions(ctx, second))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "replace clears everything the previous write left behind")
	assert.Equal(t, "t3", got[0].ID)
}

func TestReplaceTransactionsEmptyClears(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceTransactions(ctx, []model.Transaction{
		{ID: "t1", Amount: 100, CategoryID: "food", Date: model.NewDate(2025, time.June, 1), Type: model.TypeExpense},
	}))
	require.NoError(t, store.ReplaceTransactions(ctx, nil))

	got, err := store.GetTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReplaceTransactionsRejectsBadRecordAtomically(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceTransactions(ctx, []model.Transaction{
		{ID: "keep", Amount: 100, CategoryID: "food", Date: model.NewDate(2025, time.June, 1), Type: model.TypeExpense},
	}))

	err := store.ReplaceTransactions(ctx, []model.Transaction{
		{ID: "", Amount: 50, CategoryID: "food", Date: model.NewDate(2025, time.June, 2), Type: model.TypeExpense},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransaction)

	got, readErr := store.GetTransactions(ctx)
	require.NoError(t, readErr)
	require.Len(t, got, 1, "a rejected replace leaves the previous contents intact")
	assert.Equal(t, "keep", got[0].ID)
}

func TestGoalsRoundTripNullableDeadline(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	deadline := model.NewDate(2026, time.January, 1)
	goals := []model.SavingsGoal{
		{ID: "g1", Name: "Emergency fund", TargetAmount: 5000000, CurrentAmount: 1000000, Status: model.GoalActive, Deadline: &deadline},
		{ID: "g2", Name: "Laptop", TargetAmount: 2000000, CurrentAmount: 2000000, Status: model.GoalCompleted},
	}

	require.NoError(t, store.ReplaceGoals(ctx, goals))

	got, err := store.GetGoals(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Deadline)
	assert.True(t, got[0].Deadline.Equal(deadline))
	assert.Nil(t, got[1].Deadline)
}

func TestBudgetsRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	budgets := []model.Budget{
		{CategoryID: "food", Limit: 1000000},
		{CategoryID: "transport", Limit: 500000},
	}
	require.NoError(t, store.ReplaceBudgets(ctx, budgets))

	got, err := store.GetBudgets(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, budgets, got)
}

func TestAssetsRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	assets := []model.Asset{
		{ID: "a1", Name: "Gold ring", Type: model.AssetGold, Value: 15000000, UpdatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, store.ReplaceAssets(ctx, assets))

	got, err := store.GetAssets(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gold ring", got[0].Name)
	assert.Equal(t, model.AssetGold, got[0].Type)
	assert.Equal(t, 15000000.0, got[0].Value)
}

func TestRecurringRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	recs := []model.RecurringTransaction{
		{
			ID:          "r1",
			Amount:      4000000,
			CategoryID:  "rent",
			Type:        model.TypeExpense,
			Frequency:   model.FrequencyMonthly,
			StartDate:   model.NewDate(2025, time.June, 1),
			NextDueDate: model.NewDate(2025, time.July, 1),
			WalletID:    model.WalletATM,
		},
	}
	require.NoError(t, store.ReplaceRecurring(ctx, recs))

	got, err := store.GetRecurring(ctx)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestMetaRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	t.Run("missing key reports not found", func(t *testing.T) {
		var out map[string]string
		found, err := store.GetMeta(ctx, "never-written", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		in := model.DefaultCategories()
		require.NoError(t, store.SetMeta(ctx, "categories", &in))

		var out model.AllCategories
		found, err := store.GetMeta(ctx, "categories", &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, in, out)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.SetMeta(ctx, "k", "v1"))
		require.NoError(t, store.SetMeta(ctx, "k", "v2"))

		var out string
		found, err := store.GetMeta(ctx, "k", &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "v2", out)
	})
}

func TestAdviceCache(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	t.Run("unknown id is nil without error", func(t *testing.T) {
		got, err := store.GetAdvice(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("put stamps created at and upserts", func(t *testing.T) {
		rec := &model.AdviceRecord{ID: "key1", Question: "q", Answer: "a"}
		require.NoError(t, store.PutAdvice(ctx, rec))
		assert.False(t, rec.CreatedAt.IsZero())

		rec.Answer = "updated"
		require.NoError(t, store.PutAdvice(ctx, rec))

		got, err := store.GetAdvice(ctx, "key1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "updated", got.Answer)
	})
}
