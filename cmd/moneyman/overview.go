package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/derive"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/spf13/cobra"
)

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show this month's money at a glance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			now := time.Now()
			txns := a.Ledger.Transactions()

			fmt.Println(TitleStyle.Render("Overview · " + now.Format("January 2006")))

			start, end := derive.MonthRange(now)
			income := derive.MonthIncomeTotal(txns, now)
			expense := derive.MonthExpenseTotal(txns, now)

			fmt.Printf("Income:   %s\n", SuccessStyle.Render(a.money(income)))
			fmt.Printf("Expense:  %s\n", ErrorStyle.Render(a.money(expense)))
			fmt.Printf("Savings:  %.0f%% of income kept\n", derive.SavingsRate(txns, now)*100)
			fmt.Println()

			// Wallets
			fmt.Println(HeaderStyle.Render("Wallets"))
			balances := derive.WalletBalances(txns)
			ids := make([]string, 0, len(balances))
			for id := range balances {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Printf("  %-12s %s\n", model.WalletName(id), a.money(balances[id]))
			}
			fmt.Println()

			// Spending by group
			groups := derive.ExpenseByGroup(txns, a.Ledger.Categories(), start, end)
			if len(groups) > 0 {
				fmt.Println(HeaderStyle.Render("Spending by group"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, g := range groups {
					share := 0.0
					if expense > 0 {
						share = g.Total / expense * 100
					}
					fmt.Fprintf(w, "  %s\t%s\t%.0f%%\n", g.Group.Name, a.money(g.Total), share)
				}
				_ = w.Flush()
				fmt.Println()
			}

			// Budget alerts
			for _, st := range derive.Budgets(a.Ledger.Budgets(), txns, a.Ledger.Categories(), now) {
				if st.Over {
					fmt.Println(ErrorStyle.Render(fmt.Sprintf("⚠ Budget %q exceeded: %s of %s", st.Category.Name, a.money(st.Spent), a.money(st.Limit))))
				}
			}

			// Debts
			if debts := derive.DebtLedger(txns); len(debts) > 0 {
				fmt.Println(WarningStyle.Render(fmt.Sprintf("Outstanding debt: %s across %d counterparties ('moneyman debt list')",
					a.money(derive.TotalOutstanding(debts)), len(debts))))
			}

			return nil
		},
	}
}

func networthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networth",
		Short: "Show net worth and total wealth",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns := a.Ledger.Transactions()
			assets := a.Ledger.Assets()
			summary := derive.NetWorth(assets, txns)

			fmt.Println(TitleStyle.Render("Net worth"))
			fmt.Printf("Assets:       %s\n", SuccessStyle.Render(a.money(summary.TotalAssets)))
			fmt.Printf("Liabilities:  %s\n", ErrorStyle.Render(a.money(summary.TotalLiabilities)))
			fmt.Printf("Net worth:    %s\n", a.money(summary.NetWorth))
			fmt.Println()
			fmt.Printf("Total wealth (assets + wallets, gross): %s\n", a.money(derive.TotalWealth(assets, txns)))

			return nil
		},
	}
}
