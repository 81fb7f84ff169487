package derive

import (
	"sort"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// GroupTotal is the summed spend of one top-level expense group.
type GroupTotal struct {
	Group model.CategoryItem
	Total float64
}

// ExpenseByGroup aggregates expense transactions in [from, to] by top-level
// group: a child's spend always rolls up into its parent's slice. Unresolvable
// category ids land in the fallback group.
func ExpenseByGroup(txns []model.Transaction, cats *model.AllCategories, from, to time.Time) []GroupTotal {
	totals := make(map[string]*GroupTotal)
	order := []string{}

	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		if !inRange(t.Date.Time(), from, to) {
			continue
		}

		group := resolveGroup(t.CategoryID, cats)
		entry, ok := totals[group.ID]
		if !ok {
			entry = &GroupTotal{Group: group}
			totals[group.ID] = entry
			order = append(order, group.ID)
		}
		entry.Total += t.Amount
	}

	result := make([]GroupTotal, 0, len(order))
	for _, id := range order {
		result = append(result, *totals[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

// resolveGroup maps a category id to its top-level group: itself when it has
// no parent, its parent when it does, the fallback when the id is dangling.
func resolveGroup(categoryID string, cats *model.AllCategories) model.CategoryItem {
	cat, ok := cats.FindExpense(categoryID)
	if !ok {
		return model.FallbackCategory
	}
	if cat.ParentID == "" {
		return cat
	}
	if parent, found := cats.FindExpense(cat.ParentID); found {
		return parent
	}
	// Parent was deleted out from under the child.
	return model.FallbackCategory
}

// MonthExpenseTotal sums expense transactions for now's calendar month.
func MonthExpenseTotal(txns []model.Transaction, now time.Time) float64 {
	return monthTotal(txns, model.TypeExpense, now)
}

// MonthIncomeTotal sums income transactions for now's calendar month.
func MonthIncomeTotal(txns []model.Transaction, now time.Time) float64 {
	return monthTotal(txns, model.TypeIncome, now)
}

func monthTotal(txns []model.Transaction, typ model.TransactionType, now time.Time) float64 {
	start, end := MonthRange(now)
	var total float64
	for _, t := range txns {
		if t.Type == typ && inRange(t.Date.Time(), start, end) {
			total += t.Amount
		}
	}
	return total
}
