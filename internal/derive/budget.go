package derive

import (
	"time"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// BudgetStatus is one budget's consumption for the current calendar month.
type BudgetStatus struct {
	Category   model.CategoryItem
	CategoryID string
	Limit      float64
	Spent      float64
	Remaining  float64
	Percent    float64 // raw, not clamped; >= 100 means over budget
	Over       bool
}

// PercentClamped returns consumption capped at 100 for display.
func (b *BudgetStatus) PercentClamped() float64 {
	if b.Percent > 100 {
		return 100
	}
	return b.Percent
}

// BudgetWarning describes a prospective overage found before committing a
// new expense.
type BudgetWarning struct {
	CategoryName string
	Limit        float64
	CurrentSpent float64
	NewTotal     float64
	IsParent     bool
}

// monthSpend sums the month's expense transactions that land on the budget's
// category, directly or through a child whose parent is the budget category.
// A budget on a parent group absorbs all of its children's spend.
func monthSpend(budgetCatID string, txns []model.Transaction, cats *model.AllCategories, start, end time.Time, excludeID string) float64 {
	var spent float64
	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		if excludeID != "" && t.ID == excludeID {
			continue
		}
		if !inRange(t.Date.Time(), start, end) {
			continue
		}
		if t.CategoryID == budgetCatID {
			spent += t.Amount
			continue
		}
		if cat, ok := cats.FindExpense(t.CategoryID); ok && cat.ParentID == budgetCatID {
			spent += t.Amount
		}
	}
	return spent
}

// Budgets computes the consumption of every budget for now's calendar month.
// A budget whose category was deleted reports the fallback category.
func Budgets(budgets []model.Budget, txns []model.Transaction, cats *model.AllCategories, now time.Time) []BudgetStatus {
	start, end := MonthRange(now)

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := monthSpend(b.CategoryID, txns, cats, start, end, "")

		cat, ok := cats.FindExpense(b.CategoryID)
		if !ok {
			cat = model.FallbackCategory
		}

		percent := 0.0
		if b.Limit > 0 {
			percent = spent / b.Limit * 100
		}

		statuses = append(statuses, BudgetStatus{
			CategoryID: b.CategoryID,
			Category:   cat,
			Limit:      b.Limit,
			Spent:      spent,
			Remaining:  b.Limit - spent,
			Percent:    percent,
			Over:       percent >= 100,
		})
	}
	return statuses
}

// CheckBudget looks for a prospective overage before committing candidate.
// The month's spend excludes the transaction being edited (matched by
// candidate.ID) and the check also walks up to the parent group's budget when
// the category itself has none. Returns nil when no applicable budget would
// be exceeded.
func CheckBudget(candidate model.Transaction, history []model.Transaction, budgets []model.Budget, cats *model.AllCategories, now time.Time) *BudgetWarning {
	if candidate.Type != model.TypeExpense || candidate.CategoryID == "" {
		return nil
	}

	targetCat, ok := cats.FindExpense(candidate.CategoryID)
	if !ok {
		return nil
	}

	relatedIDs := []string{candidate.CategoryID}
	if targetCat.ParentID != "" {
		relatedIDs = append(relatedIDs, targetCat.ParentID)
	}

	start, end := MonthRange(now)
	for _, budget := range budgets {
		applicable := false
		for _, id := range relatedIDs {
			if budget.CategoryID == id {
				applicable = true
				break
			}
		}
		if !applicable {
			continue
		}

		spent := monthSpend(budget.CategoryID, history, cats, start, end, candidate.ID)
		newTotal := spent + candidate.Amount
		if newTotal > budget.Limit {
			name := model.FallbackCategory.Name
			if budgetCat, found := cats.FindExpense(budget.CategoryID); found {
				name = budgetCat.Name
			}
			return &BudgetWarning{
				CategoryName: name,
				Limit:        budget.Limit,
				CurrentSpent: spent,
				NewTotal:     newTotal,
				IsParent:     budget.CategoryID != candidate.CategoryID,
			}
		}
	}
	return nil
}
