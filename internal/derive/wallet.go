// Package derive computes balances, budgets, debts and net worth from an
// in-memory ledger snapshot. Everything here is a pure function over slices:
// nothing is cached, nothing is stored, and missing references fall back to
// defined defaults instead of failing.
package derive

import "github.com/MoneyManage/MoneyManage/internal/model"

// WalletBalance replays the transaction log for one wallet. Income and
// incoming transfers add; expenses and outgoing transfers subtract. The fold
// is a pure sum, so the result is independent of transaction order.
func WalletBalance(txns []model.Transaction, walletID string) float64 {
	var balance float64
	for _, t := range txns {
		if t.WalletID == walletID {
			switch t.Type {
			case model.TypeIncome:
				balance += t.Amount
			case model.TypeExpense, model.TypeTransfer:
				balance -= t.Amount
			case model.TypeDebt:
				// Debt movements track the counterparty ledger, not wallets.
			}
		}
		if t.Type == model.TypeTransfer && t.DestinationWalletID == walletID {
			balance += t.Amount
		}
	}
	return balance
}

// WalletBalances returns the balance of every wallet referenced by any
// transaction, plus the known wallet ids.
func WalletBalances(txns []model.Transaction) map[string]float64 {
	balances := map[string]float64{
		model.WalletCash:    0,
		model.WalletATM:     0,
		model.WalletEWallet: 0,
	}
	for _, t := range txns {
		if t.WalletID != "" {
			balances[t.WalletID] = 0
		}
		if t.DestinationWalletID != "" {
			balances[t.DestinationWalletID] = 0
		}
	}
	for id := range balances {
		balances[id] = WalletBalance(txns, id)
	}
	return balances
}
