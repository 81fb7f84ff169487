// Package ledger holds the authoritative in-memory state of every entity
// collection and applies mutations while preserving invariants. Each
// mutation synchronously updates memory, then flushes the affected
// collection to the durable store; a failed flush is surfaced as a non-fatal
// warning and never rolls the in-memory state back.
//
// The ledger assumes the single-writer model: one logical thread of control
// drives all mutations.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/common"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/service"
)

// State tracks the load lifecycle. The application must treat the ledger as
// unusable until Ready.
type State int

const (
	// Uninitialized means Load has not been called.
	Uninitialized State = iota
	// Loading means collections are being read from the store.
	Loading
	// Ready means every collection is loaded (possibly empty).
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	}
	return "uninitialized"
}

// Metadata key for the persisted category forest.
const categoriesKey = "categories"

// Ledger owns the in-memory copies of every collection.
type Ledger struct {
	store        service.Store
	transactions []model.Transaction
	recurring    []model.RecurringTransaction
	goals        []model.SavingsGoal
	budgets      []model.Budget
	assets       []model.Asset
	categories   model.AllCategories
	retry        service.RetryOptions
	state        State
}

// New creates a ledger over the given store. A nil store means the durable
// layer was unavailable: the ledger still works for the session, nothing
// persists.
func New(store service.Store) *Ledger {
	return &Ledger{
		store: store,
		retry: service.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 50 * time.Millisecond,
		},
	}
}

// State reports the load lifecycle state.
func (l *Ledger) State() State {
	return l.state
}

// Load reads every collection from the store. With no store it degrades to
// an empty seeded ledger and still reaches Ready. First run (no persisted
// categories) seeds the default taxonomy.
func (l *Ledger) Load(ctx context.Context) error {
	l.state = Loading

	if l.store == nil {
		slog.Warn("durable store unavailable, running with empty in-memory ledger")
		l.transactions = []model.Transaction{}
		l.recurring = []model.RecurringTransaction{}
		l.goals = []model.SavingsGoal{}
		l.budgets = []model.Budget{}
		l.assets = []model.Asset{}
		l.categories = model.DefaultCategories()
		l.state = Ready
		return nil
	}

	var err error
	if l.transactions, err = l.store.GetTransactions(ctx); err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}
	if l.recurring, err = l.store.GetRecurring(ctx); err != nil {
		return fmt.Errorf("loading recurring transactions: %w", err)
	}
	if l.goals, err = l.store.GetGoals(ctx); err != nil {
		return fmt.Errorf("loading goals: %w", err)
	}
	if l.budgets, err = l.store.GetBudgets(ctx); err != nil {
		return fmt.Errorf("loading budgets: %w", err)
	}
	if l.assets, err = l.store.GetAssets(ctx); err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	found, err := l.store.GetMeta(ctx, categoriesKey, &l.categories)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}
	if !found || l.categories.IsEmpty() {
		l.categories = model.DefaultCategories()
		if err := l.store.SetMeta(ctx, categoriesKey, &l.categories); err != nil {
			slog.Warn("failed to persist default categories", "error", err)
		}
	}

	l.state = Ready
	slog.Info("ledger loaded",
		"transactions", len(l.transactions),
		"recurring", len(l.recurring),
		"goals", len(l.goals),
		"budgets", len(l.budgets),
		"assets", len(l.assets))
	return nil
}

// Accessors return the live slices. Callers must treat them as read-only
// snapshots; all mutation goes through the coordinator methods.

// Transactions returns all transactions, most recent first.
func (l *Ledger) Transactions() []model.Transaction { return l.transactions }

// Recurring returns all recurring templates.
func (l *Ledger) Recurring() []model.RecurringTransaction { return l.recurring }

// Goals returns all savings goals.
func (l *Ledger) Goals() []model.SavingsGoal { return l.goals }

// Budgets returns all budgets.
func (l *Ledger) Budgets() []model.Budget { return l.budgets }

// Assets returns all assets.
func (l *Ledger) Assets() []model.Asset { return l.assets }

// Categories returns the category forest.
func (l *Ledger) Categories() *model.AllCategories { return &l.categories }

func (l *Ledger) ensureReady() error {
	if l.state != Ready {
		return fmt.Errorf("ledger is %s, not ready", l.state)
	}
	return nil
}

// flush pushes one collection to the durable store with a retry, converting
// a persistent failure into a user-visible, non-fatal error. The in-memory
// mutation has already happened and stays.
func (l *Ledger) flush(ctx context.Context, collection string, op func() error) error {
	if l.store == nil {
		return nil
	}

	err := common.WithRetry(ctx, op, l.retry)
	if err == nil {
		return nil
	}

	common.LogError(err, "failed to persist collection", common.Fields{"collection": collection})
	return common.NewUserError("changes may not be saved", fmt.Errorf("%w: %s: %v", common.ErrStoreWriteFailed, collection, err))
}

func (l *Ledger) flushTransactions(ctx context.Context) error {
	return l.flush(ctx, "transactions", func() error {
		return l.store.ReplaceTransactions(ctx, l.transactions)
	})
}

func (l *Ledger) flushRecurring(ctx context.Context) error {
	return l.flush(ctx, "recurring", func() error {
		return l.store.ReplaceRecurring(ctx, l.recurring)
	})
}

func (l *Ledger) flushGoals(ctx context.Context) error {
	return l.flush(ctx, "goals", func() error {
		return l.store.ReplaceGoals(ctx, l.goals)
	})
}

func (l *Ledger) flushBudgets(ctx context.Context) error {
	return l.flush(ctx, "budgets", func() error {
		return l.store.ReplaceBudgets(ctx, l.budgets)
	})
}

func (l *Ledger) flushAssets(ctx context.Context) error {
	return l.flush(ctx, "assets", func() error {
		return l.store.ReplaceAssets(ctx, l.assets)
	})
}

func (l *Ledger) flushCategories(ctx context.Context) error {
	return l.flush(ctx, categoriesKey, func() error {
		return l.store.SetMeta(ctx, categoriesKey, &l.categories)
	})
}
