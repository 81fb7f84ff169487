package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/MoneyManage/MoneyManage/internal/common"
	"github.com/MoneyManage/MoneyManage/internal/model"
)

// AddCategory appends an item to the given namespace. A parent, when set,
// must be an existing top-level item in the same namespace: the forest is at
// most two levels deep.
func (l *Ledger) AddCategory(ctx context.Context, ns model.CategoryNamespace, item model.CategoryItem) (model.CategoryItem, error) {
	if err := l.ensureReady(); err != nil {
		return model.CategoryItem{}, err
	}
	if !ns.Valid() {
		return model.CategoryItem{}, fmt.Errorf("%w: unknown namespace %q", common.ErrValidation, ns)
	}
	if strings.TrimSpace(item.Name) == "" {
		return model.CategoryItem{}, fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	if item.ID == "" {
		item.ID = model.NewID()
	}
	if _, exists := l.categories.Find(item.ID); exists {
		return model.CategoryItem{}, fmt.Errorf("%w: category id %q already exists", common.ErrValidation, item.ID)
	}

	if item.ParentID != "" {
		parent, ok := l.findInNamespace(ns, item.ParentID)
		if !ok {
			return model.CategoryItem{}, fmt.Errorf("%w: parent %q not found in %s", common.ErrValidation, item.ParentID, ns)
		}
		if parent.ParentID != "" {
			return model.CategoryItem{}, fmt.Errorf("%w: parent %q is itself a child", common.ErrValidation, item.ParentID)
		}
	}

	switch ns {
	case model.NamespaceExpense:
		l.categories.Expense = append(l.categories.Expense, item)
	case model.NamespaceIncome:
		l.categories.Income = append(l.categories.Income, item)
	case model.NamespaceDebt:
		l.categories.Debt = append(l.categories.Debt, item)
	}

	return item, l.flushCategories(ctx)
}

// UpdateCategory finds which namespace owns item.ID (ids are unique across
// the whole forest) and replaces it in place. An unknown id is a no-op.
func (l *Ledger) UpdateCategory(ctx context.Context, item model.CategoryItem) error {
	if err := l.ensureReady(); err != nil {
		return err
	}

	for _, list := range [][]model.CategoryItem{l.categories.Expense, l.categories.Income, l.categories.Debt} {
		for i := range list {
			if list[i].ID == item.ID {
				list[i] = item
				return l.flushCategories(ctx)
			}
		}
	}
	return nil
}

// DeleteCategory removes an id from whichever namespace contains it.
// Children of a deleted parent are reparented to top level; transactions
// keep the dangling id and resolve to the fallback category at display time.
func (l *Ledger) DeleteCategory(ctx context.Context, id string) error {
	if err := l.ensureReady(); err != nil {
		return err
	}

	removed := false
	l.categories.Expense, removed = removeAndReparent(l.categories.Expense, id, removed)
	l.categories.Income, removed = removeAndReparent(l.categories.Income, id, removed)
	l.categories.Debt, removed = removeAndReparent(l.categories.Debt, id, removed)

	if !removed {
		return nil
	}
	return l.flushCategories(ctx)
}

func removeAndReparent(list []model.CategoryItem, id string, alreadyRemoved bool) ([]model.CategoryItem, bool) {
	removed := alreadyRemoved
	out := list[:0]
	for _, item := range list {
		if item.ID == id {
			removed = true
			continue
		}
		if item.ParentID == id {
			item.ParentID = ""
		}
		out = append(out, item)
	}
	return out, removed
}

func (l *Ledger) findInNamespace(ns model.CategoryNamespace, id string) (model.CategoryItem, bool) {
	for _, item := range l.categories.Namespace(ns) {
		if item.ID == id {
			return item, true
		}
	}
	return model.CategoryItem{}, false
}
