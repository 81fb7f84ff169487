// Package appctx carries per-session application settings (currency, locale,
// PIN lock) as an explicit object with an init/teardown lifecycle, injected
// where needed instead of living in process-wide globals.
package appctx

import (
	"context"
	"fmt"
	"strings"

	"github.com/MoneyManage/MoneyManage/internal/service"
)

// Metadata key under which settings persist.
const settingsKey = "settings"

// Settings is the persisted shape of session preferences.
type Settings struct {
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
	PIN      string `json:"pin,omitempty"`
}

// Session holds the settings for one application run plus the lock state,
// which is never persisted: every session starts locked when a PIN is set.
type Session struct {
	store    service.Store
	settings Settings
	locked   bool
}

// NewSession loads persisted settings, falling back to defaults when the
// store is unavailable or the key was never written.
func NewSession(ctx context.Context, store service.Store) *Session {
	s := &Session{
		store: store,
		settings: Settings{
			Currency: "VND",
			Locale:   "vi-VN",
		},
	}

	if store != nil {
		if found, err := store.GetMeta(ctx, settingsKey, &s.settings); err == nil && found {
			// loaded persisted preferences
		}
	}

	s.locked = s.settings.PIN != ""
	return s
}

// Settings returns the current settings.
func (s *Session) Settings() Settings { return s.settings }

// Locked reports whether the session is PIN-locked.
func (s *Session) Locked() bool { return s.locked }

// Unlock compares the supplied code against the configured PIN.
func (s *Session) Unlock(code string) bool {
	if s.settings.PIN == "" || code == s.settings.PIN {
		s.locked = false
		return true
	}
	return false
}

// SetPIN configures or clears (empty string) the session PIN and persists.
func (s *Session) SetPIN(ctx context.Context, pin string) error {
	s.settings.PIN = strings.TrimSpace(pin)
	return s.save(ctx)
}

// SetCurrency updates the display currency and persists.
func (s *Session) SetCurrency(ctx context.Context, currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	s.settings.Currency = currency
	return s.save(ctx)
}

// FormatCurrency renders an amount with the session currency, grouping
// thousands. Amounts are whole currency units.
func (s *Session) FormatCurrency(amount float64) string {
	return fmt.Sprintf("%s %s", groupDigits(amount), s.settings.Currency)
}

// Close tears the session down. Lock state is deliberately dropped.
func (s *Session) Close() {
	s.locked = s.settings.PIN != ""
}

func (s *Session) save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.SetMeta(ctx, settingsKey, &s.settings)
}

func groupDigits(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.0f", amount)
	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
