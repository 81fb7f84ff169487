package derive

import (
	"time"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// NetWorthSummary aggregates manually tracked assets against borrowed debt.
type NetWorthSummary struct {
	TotalAssets      float64
	TotalLiabilities float64
	NetWorth         float64
}

// NetWorth sums asset values and nets borrowed debt across all
// counterparties combined. Only the borrow/repay directions count as
// liabilities; money lent out (loan/collect) is someone else's liability.
func NetWorth(assets []model.Asset, txns []model.Transaction) NetWorthSummary {
	var totalAssets float64
	for _, a := range assets {
		totalAssets += a.Value
	}

	var borrowed, repaid float64
	for _, t := range txns {
		if t.Type != model.TypeDebt {
			continue
		}
		switch t.CategoryID {
		case model.DebtCategoryBorrow:
			borrowed += t.Amount
		case model.DebtCategoryRepay:
			repaid += t.Amount
		}
	}

	liabilities := borrowed - repaid
	if liabilities < 0 {
		liabilities = 0
	}

	return NetWorthSummary{
		TotalAssets:      totalAssets,
		TotalLiabilities: liabilities,
		NetWorth:         totalAssets - liabilities,
	}
}

// TotalWealth is gross holdings: assets plus liquid wallet balances.
// Liabilities are deliberately excluded; "wealth" here means what is held,
// not what is owed.
func TotalWealth(assets []model.Asset, txns []model.Transaction) float64 {
	var total float64
	for _, a := range assets {
		total += a.Value
	}
	for _, balance := range WalletBalances(txns) {
		total += balance
	}
	return total
}

// SavingsRate is this month's (income - expense) / income, or 0 when the
// month has no income.
func SavingsRate(txns []model.Transaction, now time.Time) float64 {
	start, end := MonthRange(now)

	var income, expense float64
	for _, t := range txns {
		if !inRange(t.Date.Time(), start, end) {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			income += t.Amount
		case model.TypeExpense:
			expense += t.Amount
		case model.TypeDebt, model.TypeTransfer:
		}
	}

	if income <= 0 {
		return 0
	}
	return (income - expense) / income
}
