// Package advice implements the financial-advice collaborator. Advisors see
// only a read-only snapshot of derived figures plus the user's question and
// return free text; they have no access to the ledger.
package advice

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/service"
)

// Cache is the slice of the durable store the advisor needs.
type Cache interface {
	GetAdvice(ctx context.Context, id string) (*model.AdviceRecord, error)
	PutAdvice(ctx context.Context, rec *model.AdviceRecord) error
}

// CachedAdvisor wraps an Advisor with a durable response cache keyed by the
// question and the snapshot it was asked against. Cache write failures are
// logged and otherwise ignored; advice is best-effort.
type CachedAdvisor struct {
	inner service.Advisor
	store Cache
}

// NewCachedAdvisor wraps inner with the durable cache. A nil store disables
// caching without disabling advice.
func NewCachedAdvisor(inner service.Advisor, store Cache) *CachedAdvisor {
	return &CachedAdvisor{inner: inner, store: store}
}

// Advise returns the cached answer when one exists, otherwise asks the inner
// advisor and caches the result.
func (a *CachedAdvisor) Advise(ctx context.Context, snapshot service.AdviceSnapshot, question string) (string, error) {
	key := cacheKey(snapshot, question)

	if a.store != nil {
		cached, err := a.store.GetAdvice(ctx, key)
		if err != nil {
			slog.Warn("advice cache read failed", "error", err)
		} else if cached != nil {
			slog.Debug("advice cache hit", "key", key)
			return cached.Answer, nil
		}
	}

	answer, err := a.inner.Advise(ctx, snapshot, question)
	if err != nil {
		return "", err
	}

	if a.store != nil {
		if err := a.store.PutAdvice(ctx, &model.AdviceRecord{
			ID:       key,
			Question: question,
			Answer:   answer,
		}); err != nil {
			slog.Warn("advice cache write failed", "error", err)
		}
	}

	return answer, nil
}

func cacheKey(snapshot service.AdviceSnapshot, question string) string {
	data := fmt.Sprintf("%.2f:%.2f:%.4f:%s",
		snapshot.NetWorth, snapshot.TotalDebt, snapshot.SavingsRate, question)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(data)))
}

// RuleAdvisor is the offline advisor: a handful of rules over the snapshot.
// It stands in for a networked assistant, which is out of scope.
type RuleAdvisor struct{}

// Advise produces deterministic guidance from the snapshot figures.
func (RuleAdvisor) Advise(_ context.Context, snapshot service.AdviceSnapshot, _ string) (string, error) {
	switch {
	case snapshot.TotalDebt > 0 && snapshot.TotalDebt >= snapshot.NetWorth:
		return "Your outstanding debt rivals your net worth. Prioritize repayments before new spending; the snowball view lists the smallest balance to clear first.", nil
	case snapshot.SavingsRate < 0:
		return "You spent more than you earned this month. Review the largest expense groups and set budgets on the top two.", nil
	case snapshot.SavingsRate < 0.1:
		return "Your savings rate is under 10%. A budget on your biggest expense group is the fastest lever.", nil
	default:
		return "Healthy month: spending is under control. Consider moving surplus into a savings goal or an asset you track.", nil
	}
}
