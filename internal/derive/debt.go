package derive

import (
	"sort"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// DustThreshold is the currency-unit noise floor for outstanding debts.
// Balances at or below it are treated as settled, guarding against
// floating-point and rounding dust.
const DustThreshold = 1000.0

// DebtItem is the netted ledger for one counterparty.
type DebtItem struct {
	Person    string
	FirstDate model.Date
	LastDate  model.Date
	Borrowed  float64
	Repaid    float64
	Remaining float64
}

// Strategy orders outstanding debts for repayment planning. It affects only
// presentation order and the recommended next payment, never the numbers.
type Strategy string

const (
	// StrategySnowball pays the smallest remaining balance first.
	StrategySnowball Strategy = "snowball"
	// StrategyHighest pays the largest remaining balance first (avalanche).
	StrategyHighest Strategy = "highest"
	// StrategyOldest pays the longest-standing debt first.
	StrategyOldest Strategy = "oldest"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategySnowball, StrategyHighest, StrategyOldest:
		return true
	}
	return false
}

// DebtLedger partitions debt transactions by trimmed counterparty name and
// nets each ledger: borrowed = debt+loan, repaid = repay+collect. Only
// counterparties with remaining above DustThreshold are returned. Name
// matching is case-sensitive, matching the source data model.
func DebtLedger(txns []model.Transaction) []DebtItem {
	byPerson := make(map[string]*DebtItem)
	order := []string{}

	for _, t := range txns {
		if t.Type != model.TypeDebt {
			continue
		}
		person := t.Person()
		if person == "" {
			continue
		}

		item, ok := byPerson[person]
		if !ok {
			item = &DebtItem{Person: person, FirstDate: t.Date, LastDate: t.Date}
			byPerson[person] = item
			order = append(order, person)
		}

		if t.Date.After(item.LastDate) {
			item.LastDate = t.Date
		}
		if t.Date.Before(item.FirstDate) {
			item.FirstDate = t.Date
		}

		switch {
		case t.IsDebtIncrease():
			item.Borrowed += t.Amount
		case t.IsDebtDecrease():
			item.Repaid += t.Amount
		}
	}

	active := []DebtItem{}
	for _, person := range order {
		item := byPerson[person]
		item.Remaining = item.Borrowed - item.Repaid
		if item.Remaining > DustThreshold {
			active = append(active, *item)
		}
	}
	return active
}

// SortDebts orders a debt list in place according to the chosen strategy and
// returns it. The head of the result is the recommended next payment.
func SortDebts(debts []DebtItem, strategy Strategy) []DebtItem {
	switch strategy {
	case StrategyHighest:
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].Remaining > debts[j].Remaining
		})
	case StrategyOldest:
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].FirstDate.Before(debts[j].FirstDate)
		})
	default: // snowball
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].Remaining < debts[j].Remaining
		})
	}
	return debts
}

// TotalOutstanding sums the remaining balance across all active debts.
func TotalOutstanding(debts []DebtItem) float64 {
	var total float64
	for _, d := range debts {
		total += d.Remaining
	}
	return total
}
