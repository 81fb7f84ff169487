// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// Store defines the contract for the durable persistence layer. Collection
// reads return every record with unspecified order; callers re-sort. Replace
// operations atomically swap the whole collection.
type Store interface {
	// Transaction collection
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	ReplaceTransactions(ctx context.Context, txns []model.Transaction) error

	// Recurring template collection
	GetRecurring(ctx context.Context) ([]model.RecurringTransaction, error)
	ReplaceRecurring(ctx context.Context, recs []model.RecurringTransaction) error

	// Savings goal collection
	GetGoals(ctx context.Context) ([]model.SavingsGoal, error)
	ReplaceGoals(ctx context.Context, goals []model.SavingsGoal) error

	// Budget collection (keyed by category id)
	GetBudgets(ctx context.Context) ([]model.Budget, error)
	ReplaceBudgets(ctx context.Context, budgets []model.Budget) error

	// Asset collection
	GetAssets(ctx context.Context) ([]model.Asset, error)
	ReplaceAssets(ctx context.Context, assets []model.Asset) error

	// Metadata singletons (JSON blobs keyed by name)
	GetMeta(ctx context.Context, key string, out any) (bool, error)
	SetMeta(ctx context.Context, key string, value any) error

	// Advice cache (single-record upsert, never bulk-replaced)
	GetAdvice(ctx context.Context, id string) (*model.AdviceRecord, error)
	PutAdvice(ctx context.Context, rec *model.AdviceRecord) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Exporter receives already-computed report rows and writes them somewhere.
// It has no access to the ledger and cannot mutate state.
type Exporter interface {
	Export(ctx context.Context, header []string, rows [][]string) error
}

// Advisor produces free-text financial advice from a read-only snapshot of
// derived figures. Implementations must not hold ledger references.
type Advisor interface {
	Advise(ctx context.Context, snapshot AdviceSnapshot, question string) (string, error)
}

// AdviceSnapshot is the read-only view handed to an Advisor.
type AdviceSnapshot struct {
	NetWorth    float64
	TotalDebt   float64
	SavingsRate float64
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
