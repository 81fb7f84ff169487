// Package model defines the domain entities shared across the application.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType describes the direction of money movement.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
	// TypeDebt represents money borrowed from or lent to a person.
	TypeDebt TransactionType = "debt"
	// TypeTransfer represents money moved between two wallets.
	TypeTransfer TransactionType = "transfer"
)

// Valid reports whether t is one of the four known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeDebt, TypeTransfer:
		return true
	}
	return false
}

// Debt category ids form a fixed vocabulary encoding direction relative to
// the counterparty: debt/loan increase the outstanding balance, repay/collect
// decrease it.
const (
	DebtCategoryBorrow  = "debt"
	DebtCategoryRepay   = "repay"
	DebtCategoryLoan    = "loan"
	DebtCategoryCollect = "collect"
)

// CategoryTransfer is the sentinel category id for transfers, which carry no
// real category.
const CategoryTransfer = "transfer"

// Known wallet ids. Arbitrary ids are accepted everywhere; these are the ones
// the default UI vocabulary uses.
const (
	WalletCash    = "cash"
	WalletATM     = "atm"
	WalletEWallet = "e-wallet"
)

// WalletName returns a display name for a wallet id.
func WalletName(id string) string {
	switch id {
	case WalletCash:
		return "Cash"
	case WalletATM:
		return "Bank Account"
	case WalletEWallet:
		return "E-Wallet"
	case "":
		return ""
	}
	return id
}

// Transaction is a single ledger entry. All derived balances are replayed
// from the transaction log; there is no stored running balance.
type Transaction struct {
	Date                Date            `json:"date"`
	ID                  string          `json:"id"`
	CategoryID          string          `json:"categoryId"`
	Note                string          `json:"note,omitempty"`
	WalletID            string          `json:"walletId,omitempty"`
	DestinationWalletID string          `json:"destinationWalletId,omitempty"`
	WithPerson          string          `json:"withPerson,omitempty"`
	Type                TransactionType `json:"type"`
	Amount              float64         `json:"amount"`
}

// Person returns the trimmed counterparty name for debt grouping.
func (t *Transaction) Person() string {
	return strings.TrimSpace(t.WithPerson)
}

// IsDebtIncrease reports whether this debt transaction grows the outstanding
// balance with its counterparty.
func (t *Transaction) IsDebtIncrease() bool {
	return t.CategoryID == DebtCategoryBorrow || t.CategoryID == DebtCategoryLoan
}

// IsDebtDecrease reports whether this debt transaction shrinks the
// outstanding balance with its counterparty.
func (t *Transaction) IsDebtDecrease() bool {
	return t.CategoryID == DebtCategoryRepay || t.CategoryID == DebtCategoryCollect
}

// NewID returns a fresh unique entity id. Ids sort roughly by creation time;
// the random suffix guards against same-millisecond collisions.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
