package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/backup"
	"github.com/MoneyManage/MoneyManage/internal/ledger"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populate(t *testing.T, l *ledger.Ledger) {
	t.Helper()
	ctx := context.Background()

	_, err := l.AddTransaction(ctx, model.Transaction{Amount: 50000, Type: model.TypeExpense, CategoryID: "food"})
	require.NoError(t, err)
	_, err = l.AddGoal(ctx, model.SavingsGoal{Name: "Fund", TargetAmount: 1000})
	require.NoError(t, err)
	require.NoError(t, l.SetBudget(ctx, "food", 1000000))
	_, err = l.AddAsset(ctx, model.Asset{Name: "Gold", Type: model.AssetGold, Value: 100})
	require.NoError(t, err)
	_, err = l.AddRecurring(ctx, model.RecurringTransaction{
		Amount: 10, CategoryID: "rent", Type: model.TypeExpense, Frequency: model.FrequencyMonthly,
	})
	require.NoError(t, err)
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	source := testutil.SetupTestLedger(t)
	populate(t, source)

	data, err := backup.Encode(source.Snapshot())
	require.NoError(t, err)

	snap, err := backup.Decode(data)
	require.NoError(t, err)

	target := testutil.SetupTestLedger(t)
	require.NoError(t, target.Restore(context.Background(), snap))

	assert.Equal(t, source.Transactions(), target.Transactions())
	assert.Equal(t, source.Goals(), target.Goals())
	assert.Equal(t, source.Budgets(), target.Budgets())
	assert.Equal(t, *source.Categories(), *target.Categories())
	require.Len(t, target.Assets(), 1)
	assert.Equal(t, source.Assets()[0].ID, target.Assets()[0].ID)
	assert.Equal(t, source.Recurring(), target.Recurring())
}

func TestRestorePartialSnapshotLeavesOthersUntouched(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	populate(t, l)

	txns := []model.Transaction{
		testutil.Expense("new1", "food", 999, model.NewDate(2025, time.June, 1)),
	}
	snap := &backup.Snapshot{Transactions: &txns}

	require.NoError(t, l.Restore(context.Background(), snap))

	require.Len(t, l.Transactions(), 1)
	assert.Equal(t, "new1", l.Transactions()[0].ID)
	assert.Len(t, l.Goals(), 1, "absent keys leave their collections alone")
	assert.Len(t, l.Budgets(), 1)
	assert.Len(t, l.Assets(), 1)
}

func TestRestorePresentButEmptyClears(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	populate(t, l)

	empty := []model.SavingsGoal{}
	snap := &backup.Snapshot{Goals: &empty}

	require.NoError(t, l.Restore(context.Background(), snap))
	assert.Empty(t, l.Goals(), "present-but-empty means clear, unlike absent")
	assert.Len(t, l.Transactions(), 1)
}

func TestRestoreReportsPerCollectionProgress(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	populate(t, l)
	snap := l.Snapshot()

	var seen []string
	require.NoError(t, l.RestoreWithProgress(context.Background(), &snap, func(collection string) {
		seen = append(seen, collection)
	}))

	assert.Equal(t, snap.Collections(), seen, "one tick per present collection, in apply order")

	// A partial snapshot only ticks what it carries.
	txns := []model.Transaction{}
	seen = nil
	require.NoError(t, l.RestoreWithProgress(context.Background(), &backup.Snapshot{Transactions: &txns}, func(collection string) {
		seen = append(seen, collection)
	}))
	assert.Equal(t, []string{"transactions"}, seen)
}

func TestRestoreReconcilesGoalStatus(t *testing.T) {
	l := testutil.SetupTestLedger(t)

	goals := []model.SavingsGoal{
		{ID: "g1", Name: "Lied about", TargetAmount: 100, CurrentAmount: 100, Status: model.GoalActive},
		{ID: "g2", Name: "Also lied", TargetAmount: 100, CurrentAmount: 10, Status: model.GoalCompleted},
	}
	snap := &backup.Snapshot{Goals: &goals}

	require.NoError(t, l.Restore(context.Background(), snap))

	restored := l.Goals()
	require.Len(t, restored, 2)
	assert.Equal(t, model.GoalCompleted, restored[0].Status)
	assert.Equal(t, model.GoalActive, restored[1].Status)
}

func TestRestorePersists(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	l := ledger.New(store)
	require.NoError(t, l.Load(ctx))

	txns := []model.Transaction{
		testutil.Expense("r1", "food", 123, model.NewDate(2025, time.June, 1)),
	}
	require.NoError(t, l.Restore(ctx, &backup.Snapshot{Transactions: &txns}))

	// A reload from the same store sees the restored data.
	reloaded := ledger.New(store)
	require.NoError(t, reloaded.Load(ctx))
	require.Len(t, reloaded.Transactions(), 1)
	assert.Equal(t, "r1", reloaded.Transactions()[0].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	populate(t, l)

	snap := l.Snapshot()
	countBefore := len(*snap.Transactions)

	_, err := l.AddTransaction(context.Background(), model.Transaction{
		Amount: 1, Type: model.TypeExpense, CategoryID: "food",
	})
	require.NoError(t, err)

	assert.Len(t, *snap.Transactions, countBefore, "later mutations do not leak into the snapshot")
}
