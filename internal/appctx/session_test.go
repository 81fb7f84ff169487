package appctx_test

import (
	"context"
	"testing"

	"github.com/MoneyManage/MoneyManage/internal/appctx"
	"github.com/MoneyManage/MoneyManage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDefaults(t *testing.T) {
	s := appctx.NewSession(context.Background(), nil)

	assert.Equal(t, "VND", s.Settings().Currency)
	assert.Equal(t, "vi-VN", s.Settings().Locale)
	assert.False(t, s.Locked(), "no PIN means no lock")
}

func TestSessionPersistsSettings(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	first := appctx.NewSession(ctx, store)
	require.NoError(t, first.SetCurrency(ctx, "usd"))
	first.Close()

	second := appctx.NewSession(ctx, store)
	assert.Equal(t, "USD", second.Settings().Currency, "currency is normalized and survives restart")
}

func TestSessionPINLock(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	s := appctx.NewSession(ctx, store)
	require.NoError(t, s.SetPIN(ctx, "1234"))

	// A fresh session over the same store starts locked.
	fresh := appctx.NewSession(ctx, store)
	assert.True(t, fresh.Locked())

	assert.False(t, fresh.Unlock("0000"))
	assert.True(t, fresh.Locked())

	assert.True(t, fresh.Unlock("1234"))
	assert.False(t, fresh.Locked())

	t.Run("clearing the pin unlocks future sessions", func(t *testing.T) {
		require.NoError(t, fresh.SetPIN(ctx, ""))
		again := appctx.NewSession(ctx, store)
		assert.False(t, again.Locked())
	})
}

func TestSetCurrencyRejectsEmpty(t *testing.T) {
	s := appctx.NewSession(context.Background(), nil)
	require.Error(t, s.SetCurrency(context.Background(), "  "))
}

func TestFormatCurrency(t *testing.T) {
	s := appctx.NewSession(context.Background(), nil)

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "small", amount: 500, want: "500 VND"},
		{name: "thousands grouped", amount: 1500000, want: "1,500,000 VND"},
		{name: "exact group boundary", amount: 1000, want: "1,000 VND"},
		{name: "negative", amount: -25000, want: "-25,000 VND"},
		{name: "zero", amount: 0, want: "0 VND"},
		{name: "fraction rounds to whole units", amount: 999.6, want: "1,000 VND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.FormatCurrency(tt.amount))
		})
	}
}
