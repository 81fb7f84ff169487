package ledger_test

import (
	"context"
	"testing"

	"github.com/MoneyManage/MoneyManage/internal/ledger"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLifecycle(t *testing.T) {
	store := testutil.SetupTestStore(t)
	l := ledger.New(store)

	assert.Equal(t, ledger.Uninitialized, l.State())

	_, err := l.AddTransaction(context.Background(), model.Transaction{Amount: 100, Type: model.TypeExpense, CategoryID: "food"})
	require.Error(t, err, "mutations are rejected before Load")

	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, ledger.Ready, l.State())
}

func TestLoadSeedsDefaultCategories(t *testing.T) {
	l := testutil.SetupTestLedger(t)

	assert.False(t, l.Categories().IsEmpty())
	_, ok := l.Categories().Find("food")
	assert.True(t, ok)
}

func TestLoadReadsBackPersistedState(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	first := ledger.New(store)
	require.NoError(t, first.Load(ctx))

	saved, err := first.AddTransaction(ctx, model.Transaction{
		Amount: 50000, Type: model.TypeExpense, CategoryID: "food",
	})
	require.NoError(t, err)
	require.NoError(t, first.SetBudget(ctx, "food", 1000000))

	// A second ledger over the same store sees everything.
	second := ledger.New(store)
	require.NoError(t, second.Load(ctx))

	require.Len(t, second.Transactions(), 1)
	assert.Equal(t, saved.ID, second.Transactions()[0].ID)
	require.Len(t, second.Budgets(), 1)
	assert.Equal(t, 1000000.0, second.Budgets()[0].Limit)
}

func TestDetachedLedgerStillWorks(t *testing.T) {
	l := testutil.SetupDetachedLedger(t)
	ctx := context.Background()

	assert.Equal(t, ledger.Ready, l.State(), "no store still reaches Ready")
	assert.False(t, l.Categories().IsEmpty(), "defaults are seeded in memory")

	saved, err := l.AddTransaction(ctx, model.Transaction{
		Amount: 100, Type: model.TypeExpense, CategoryID: "food",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Len(t, l.Transactions(), 1)
}
