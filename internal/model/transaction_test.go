package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionJSONShape(t *testing.T) {
	txn := Transaction{
		ID:         "1700000000000-abcd1234",
		Amount:     50000,
		CategoryID: "food",
		Date:       NewDate(2025, time.May, 20),
		Type:       TypeExpense,
		WalletID:   WalletCash,
		Note:       "lunch",
	}

	data, err := json.Marshal(txn)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// Wire keys match the snapshot files older versions produced.
	assert.Equal(t, "food", raw["categoryId"])
	assert.Equal(t, "cash", raw["walletId"])
	assert.Equal(t, "2025-05-20", raw["date"])
	assert.NotContains(t, raw, "withPerson", "empty optional fields are omitted")
	assert.NotContains(t, raw, "destinationWalletId")
}

func TestDebtDirection(t *testing.T) {
	tests := []struct {
		name         string
		categoryID   string
		wantIncrease bool
		wantDecrease bool
	}{
		{name: "borrow increases", categoryID: DebtCategoryBorrow, wantIncrease: true},
		{name: "loan increases", categoryID: DebtCategoryLoan, wantIncrease: true},
		{name: "repay decreases", categoryID: DebtCategoryRepay, wantDecrease: true},
		{name: "collect decreases", categoryID: DebtCategoryCollect, wantDecrease: true},
		{name: "expense category is neither", categoryID: "food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Type: TypeDebt, CategoryID: tt.categoryID}
			assert.Equal(t, tt.wantIncrease, txn.IsDebtIncrease())
			assert.Equal(t, tt.wantDecrease, txn.IsDebtDecrease())
		})
	}
}

func TestPersonTrimsWhitespace(t *testing.T) {
	txn := Transaction{WithPerson: "  Alice  "}
	assert.Equal(t, "Alice", txn.Person())
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGoalReconcile(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    GoalStatus
	}{
		{name: "under target stays active", current: 50, target: 100, want: GoalActive},
		{name: "exactly at target completes", current: 100, target: 100, want: GoalCompleted},
		{name: "over target completes", current: 150, target: 100, want: GoalCompleted},
		{name: "zero progress is active", current: 0, target: 100, want: GoalActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := SavingsGoal{CurrentAmount: tt.current, TargetAmount: tt.target, Status: "bogus"}
			g.Reconcile()
			assert.Equal(t, tt.want, g.Status)
		})
	}
}

func TestGoalProgressClamped(t *testing.T) {
	g := SavingsGoal{CurrentAmount: 250, TargetAmount: 100}
	assert.Equal(t, 100.0, g.Progress())

	g = SavingsGoal{CurrentAmount: 25, TargetAmount: 100}
	assert.Equal(t, 25.0, g.Progress())

	g = SavingsGoal{CurrentAmount: 25, TargetAmount: 0}
	assert.Equal(t, 0.0, g.Progress())
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()

	assert.False(t, cats.IsEmpty())

	// Every child's parent must exist in the same namespace at top level.
	for _, ns := range []CategoryNamespace{NamespaceExpense, NamespaceIncome, NamespaceDebt} {
		for _, item := range cats.Namespace(ns) {
			if item.ParentID == "" {
				continue
			}
			parent, ok := cats.Find(item.ParentID)
			require.True(t, ok, "parent %s of %s missing", item.ParentID, item.ID)
			assert.Empty(t, parent.ParentID, "forest must be at most two levels")
		}
	}

	// The debt vocabulary carries the fixed direction ids.
	for _, id := range []string{DebtCategoryBorrow, DebtCategoryRepay, DebtCategoryLoan, DebtCategoryCollect} {
		_, ok := cats.Find(id)
		assert.True(t, ok, "debt direction %s missing", id)
	}
}
