package derive

import (
	"testing"

	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNetWorth(t *testing.T) {
	assets := []model.Asset{
		{ID: "a1", Name: "Gold", Type: model.AssetGold, Value: 100},
		{ID: "a2", Name: "Savings", Type: model.AssetSaving, Value: 50},
	}
	txns := []model.Transaction{
		testutil.Debt("t1", model.DebtCategoryBorrow, "Alice", 80, day(1)),
		testutil.Debt("t2", model.DebtCategoryRepay, "Alice", 30, day(2)),
		// Money lent out is not a liability.
		testutil.Debt("t3", model.DebtCategoryLoan, "Bob", 999, day(3)),
		testutil.Debt("t4", model.DebtCategoryCollect, "Bob", 1, day(4)),
	}

	summary := NetWorth(assets, txns)

	assert.Equal(t, 150.0, summary.TotalAssets)
	assert.Equal(t, 50.0, summary.TotalLiabilities, "liabilities are borrow minus repay only")
	assert.Equal(t, 100.0, summary.NetWorth)
}

func TestNetWorthLiabilitiesNeverNegative(t *testing.T) {
	txns := []model.Transaction{
		testutil.Debt("t1", model.DebtCategoryBorrow, "Alice", 100, day(1)),
		testutil.Debt("t2", model.DebtCategoryRepay, "Alice", 300, day(2)),
	}

	summary := NetWorth(nil, txns)
	assert.Equal(t, 0.0, summary.TotalLiabilities, "over-repayment clamps to zero")
	assert.Equal(t, 0.0, summary.NetWorth)
}

func TestTotalWealth(t *testing.T) {
	assets := []model.Asset{{ID: "a1", Name: "Gold", Type: model.AssetGold, Value: 500}}
	txns := []model.Transaction{
		testutil.Income("t1", "salary", 1000, day(1)),
		testutil.Expense("t2", "food", 200, day(2)),
		// Borrowed money does not reduce wealth; it is gross holdings.
		testutil.Debt("t3", model.DebtCategoryBorrow, "Alice", 700, day(3)),
	}

	assert.Equal(t, 1300.0, TotalWealth(assets, txns))
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name string
		txns []model.Transaction
		want float64
	}{
		{
			name: "saves forty percent",
			txns: []model.Transaction{
				testutil.Income("t1", "salary", 1000, day(1)),
				testutil.Expense("t2", "food", 600, day(2)),
			},
			want: 0.4,
		},
		{
			name: "overspending goes negative",
			txns: []model.Transaction{
				testutil.Income("t1", "salary", 1000, day(1)),
				testutil.Expense("t2", "food", 1500, day(2)),
			},
			want: -0.5,
		},
		{
			name: "no income means zero not NaN",
			txns: []model.Transaction{
				testutil.Expense("t1", "food", 500, day(2)),
			},
			want: 0,
		},
		{
			name: "debt and transfers are excluded",
			txns: []model.Transaction{
				testutil.Income("t1", "salary", 1000, day(1)),
				testutil.Debt("t2", model.DebtCategoryBorrow, "Alice", 5000, day(2)),
				testutil.Transfer("t3", model.WalletCash, model.WalletATM, 800, day(3)),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SavingsRate(tt.txns, juneNow), 1e-9)
		})
	}
}
