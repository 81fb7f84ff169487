package advice

import (
	"context"
	"errors"
	"testing"

	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAdvisor records how many times it is asked.
type countingAdvisor struct {
	err    error
	answer string
	calls  int
}

func (c *countingAdvisor) Advise(_ context.Context, _ service.AdviceSnapshot, _ string) (string, error) {
	c.calls++
	return c.answer, c.err
}

// memCache is an in-memory Cache for tests.
type memCache struct {
	records map[string]*model.AdviceRecord
	getErr  error
	putErr  error
}

func newMemCache() *memCache {
	return &memCache{records: make(map[string]*model.AdviceRecord)}
}

func (m *memCache) GetAdvice(_ context.Context, id string) (*model.AdviceRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.records[id], nil
}

func (m *memCache) PutAdvice(_ context.Context, rec *model.AdviceRecord) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.records[rec.ID] = rec
	return nil
}

func TestCachedAdvisorCachesBySnapshotAndQuestion(t *testing.T) {
	ctx := context.Background()
	inner := &countingAdvisor{answer: "pay off debt"}
	cache := newMemCache()
	advisor := NewCachedAdvisor(inner, cache)

	snapshot := service.AdviceSnapshot{NetWorth: 100, TotalDebt: 50, SavingsRate: 0.2}

	answer, err := advisor.Advise(ctx, snapshot, "what now?")
	require.NoError(t, err)
	assert.Equal(t, "pay off debt", answer)
	assert.Equal(t, 1, inner.calls)

	// Same snapshot, same question: cache hit.
	answer, err = advisor.Advise(ctx, snapshot, "what now?")
	require.NoError(t, err)
	assert.Equal(t, "pay off debt", answer)
	assert.Equal(t, 1, inner.calls, "second identical ask never reaches the inner advisor")

	// Different question misses.
	_, err = advisor.Advise(ctx, snapshot, "different question")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)

	// Different figures miss too.
	changed := snapshot
	changed.TotalDebt = 51
	_, err = advisor.Advise(ctx, changed, "what now?")
	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestCachedAdvisorToleratesCacheFailures(t *testing.T) {
	ctx := context.Background()
	inner := &countingAdvisor{answer: "ok"}
	cache := newMemCache()
	cache.getErr = errors.New("read broken")
	cache.putErr = errors.New("write broken")
	advisor := NewCachedAdvisor(inner, cache)

	answer, err := advisor.Advise(ctx, service.AdviceSnapshot{}, "q")
	require.NoError(t, err, "cache failures never fail the ask")
	assert.Equal(t, "ok", answer)
}

func TestCachedAdvisorNilCache(t *testing.T) {
	inner := &countingAdvisor{answer: "ok"}
	advisor := NewCachedAdvisor(inner, nil)

	answer, err := advisor.Advise(context.Background(), service.AdviceSnapshot{}, "q")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
}

func TestCachedAdvisorPropagatesInnerError(t *testing.T) {
	inner := &countingAdvisor{err: errors.New("advisor down")}
	advisor := NewCachedAdvisor(inner, newMemCache())

	_, err := advisor.Advise(context.Background(), service.AdviceSnapshot{}, "q")
	require.Error(t, err)
}

func TestRuleAdvisor(t *testing.T) {
	tests := []struct {
		name     string
		snapshot service.AdviceSnapshot
		contains string
	}{
		{
			name:     "debt dominates",
			snapshot: service.AdviceSnapshot{NetWorth: 100, TotalDebt: 150, SavingsRate: 0.5},
			contains: "debt",
		},
		{
			name:     "overspent month",
			snapshot: service.AdviceSnapshot{NetWorth: 1000, TotalDebt: 0, SavingsRate: -0.2},
			contains: "more than you earned",
		},
		{
			name:     "thin savings",
			snapshot: service.AdviceSnapshot{NetWorth: 1000, TotalDebt: 0, SavingsRate: 0.05},
			contains: "under 10%",
		},
		{
			name:     "healthy",
			snapshot: service.AdviceSnapshot{NetWorth: 1000, TotalDebt: 0, SavingsRate: 0.4},
			contains: "Healthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := (RuleAdvisor{}).Advise(context.Background(), tt.snapshot, "")
			require.NoError(t, err)
			assert.Contains(t, answer, tt.contains)
		})
	}
}
