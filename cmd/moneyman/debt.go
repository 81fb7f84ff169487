package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MoneyManage/MoneyManage/internal/calc"
	"github.com/MoneyManage/MoneyManage/internal/derive"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/spf13/cobra"
)

func debtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Track money owed to and by you",
		Long: `Debts are derived from debt-type transactions, netted per counterparty.
Settled balances (at or below the dust threshold) disappear from the list.`,
	}

	cmd.AddCommand(debtListCmd())
	cmd.AddCommand(debtPayCmd())

	return cmd
}

func debtListCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List outstanding debts by repayment strategy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			st := derive.Strategy(strategy)
			if !st.Valid() {
				return fmt.Errorf("unknown strategy %q (snowball, highest, oldest)", strategy)
			}

			debts := derive.SortDebts(derive.DebtLedger(a.Ledger.Transactions()), st)
			if len(debts) == 0 {
				fmt.Println(SuccessStyle.Render("No outstanding debts. 🎉"))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				HeaderStyle.Render("Person"),
				HeaderStyle.Render("Borrowed"),
				HeaderStyle.Render("Repaid"),
				HeaderStyle.Render("Remaining"),
				HeaderStyle.Render("Since"))

			for _, d := range debts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					d.Person, a.money(d.Borrowed), a.money(d.Repaid), a.money(d.Remaining), d.FirstDate)
			}
			_ = w.Flush()

			fmt.Println()
			fmt.Println(InfoStyle.Render(fmt.Sprintf("Total outstanding: %s. Pay %s next (%s strategy).",
				a.money(derive.TotalOutstanding(debts)), debts[0].Person, st)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(derive.StrategySnowball), "repayment order (snowball, highest, oldest)")
	return cmd
}

func debtPayCmd() *cobra.Command {
	var wallet string

	cmd := &cobra.Command{
		Use:   "pay <person> <amount>",
		Short: "Record a repayment to a counterparty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			amount, err := calc.Eval(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			txn, err := a.Ledger.PayDebt(ctx, args[0], amount, wallet)
			if err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Paid %s to %s (%s)", a.money(txn.Amount), args[0], txn.ID)))

			// Show what is left with this person after the payment.
			for _, d := range derive.DebtLedger(a.Ledger.Transactions()) {
				if d.Person == txn.Person() {
					fmt.Println(InfoStyle.Render(fmt.Sprintf("Remaining with %s: %s", d.Person, a.money(d.Remaining))))
					return nil
				}
			}
			fmt.Println(SuccessStyle.Render("Debt with " + txn.Person() + " is settled."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&wallet, "wallet", "w", model.WalletCash, "wallet the payment comes from")
	return cmd
}
