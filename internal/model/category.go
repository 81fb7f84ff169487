package model

// CategoryNamespace partitions categories by the transaction type they apply
// to. Category ids are unique across all three namespaces because
// transactions reference a bare id.
type CategoryNamespace string

const (
	// NamespaceExpense holds spending categories.
	NamespaceExpense CategoryNamespace = "expense"
	// NamespaceIncome holds earning categories.
	NamespaceIncome CategoryNamespace = "income"
	// NamespaceDebt holds the fixed debt-direction vocabulary.
	NamespaceDebt CategoryNamespace = "debt"
)

// Valid reports whether ns is a known namespace.
func (ns CategoryNamespace) Valid() bool {
	switch ns {
	case NamespaceExpense, NamespaceIncome, NamespaceDebt:
		return true
	}
	return false
}

// CategoryItem is one node in the two-level category forest. An item either
// has no parent (a group) or points at a parent that itself has none.
type CategoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	ParentID string `json:"parentId,omitempty"`
}

// AllCategories is the whole category forest, persisted as a single metadata
// blob since the lists are small and always loaded and saved whole.
type AllCategories struct {
	Expense []CategoryItem `json:"expense"`
	Income  []CategoryItem `json:"income"`
	Debt    []CategoryItem `json:"debt"`
}

// Namespace returns the list backing the given namespace.
func (c *AllCategories) Namespace(ns CategoryNamespace) []CategoryItem {
	switch ns {
	case NamespaceExpense:
		return c.Expense
	case NamespaceIncome:
		return c.Income
	case NamespaceDebt:
		return c.Debt
	}
	return nil
}

// Find looks an id up across all three namespaces.
func (c *AllCategories) Find(id string) (CategoryItem, bool) {
	for _, list := range [][]CategoryItem{c.Expense, c.Income, c.Debt} {
		for _, item := range list {
			if item.ID == id {
				return item, true
			}
		}
	}
	return CategoryItem{}, false
}

// FindExpense looks an id up in the expense namespace only.
func (c *AllCategories) FindExpense(id string) (CategoryItem, bool) {
	for _, item := range c.Expense {
		if item.ID == id {
			return item, true
		}
	}
	return CategoryItem{}, false
}

// IsEmpty reports whether no namespace has any categories, meaning the
// defaults should be seeded.
func (c *AllCategories) IsEmpty() bool {
	return len(c.Expense) == 0 && len(c.Income) == 0 && len(c.Debt) == 0
}

// FallbackCategory resolves dangling category references at display time.
// Deleting a category leaves historical transactions pointing at its id; the
// derivation layer groups them here instead of failing.
var FallbackCategory = CategoryItem{
	ID:    "other",
	Name:  "Other",
	Icon:  "Box",
	Color: "bg-gray-100 text-gray-600",
}
