package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MoneyManage/MoneyManage/internal/appctx"
	"github.com/MoneyManage/MoneyManage/internal/common"
	"github.com/MoneyManage/MoneyManage/internal/config"
	"github.com/MoneyManage/MoneyManage/internal/ledger"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/MoneyManage/MoneyManage/internal/service"
	"github.com/MoneyManage/MoneyManage/internal/storage"
	"github.com/spf13/viper"
)

// app bundles everything a command needs for one run.
type app struct {
	Ledger  *ledger.Ledger
	Store   *storage.SQLiteStore // nil when the store could not be opened
	Session *appctx.Session
}

// openApp opens the store, migrates, and loads the ledger. A store that
// cannot be opened degrades to an in-memory session instead of failing:
// the tool stays usable, nothing persists.
func openApp(ctx context.Context) (*app, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	var store *storage.SQLiteStore
	s, err := storage.NewStore(dbPath)
	switch {
	case err == nil:
		if migErr := s.Migrate(ctx); migErr != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", migErr)
		}
		store = s
	case errors.Is(err, common.ErrStoreUnavailable):
		slog.Warn("store unavailable, changes will not persist", "path", dbPath, "error", err)
	default:
		return nil, err
	}

	led := ledger.New(storeOrNil(store))
	if err := led.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return &app{
		Ledger:  led,
		Store:   store,
		Session: appctx.NewSession(ctx, storeOrNil(store)),
	}, nil
}

// storeOrNil avoids handing out a typed nil through the Store interface.
func storeOrNil(s *storage.SQLiteStore) service.Store {
	if s == nil {
		return nil
	}
	return s
}

// Close releases the store if one was opened.
func (a *app) Close() {
	a.Session.Close()
	if a.Store != nil {
		_ = a.Store.Close()
	}
}

// money renders an amount with the session currency.
func (a *app) money(amount float64) string {
	return a.Session.FormatCurrency(amount)
}

// categoryName resolves a category id for display.
func (a *app) categoryName(id string) string {
	if id == "" || id == model.CategoryTransfer {
		return "-"
	}
	if cat, ok := a.Ledger.Categories().Find(id); ok {
		return cat.Name
	}
	return model.FallbackCategory.Name
}
