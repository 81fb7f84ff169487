package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/calc"
	"github.com/MoneyManage/MoneyManage/internal/derive"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/spf13/cobra"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, edit and delete income, expense, debt and transfer transactions.`,
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txDeleteCmd())

	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		txType     string
		category   string
		dateStr    string
		note       string
		wallet     string
		destWallet string
		withPerson string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a transaction",
		Long: `Record a transaction. The amount may be an arithmetic expression,
e.g. "100000+25000*2". Expenses are checked against budgets before saving.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			amount, err := calc.Eval(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			txn := model.Transaction{
				Amount:              amount,
				Type:                model.TransactionType(txType),
				CategoryID:          category,
				Note:                note,
				WalletID:            wallet,
				DestinationWalletID: destWallet,
				WithPerson:          withPerson,
			}
			if dateStr != "" {
				if txn.Date, err = model.ParseDate(dateStr); err != nil {
					return err
				}
			}

			// Warn before blowing a budget, like the original entry flow.
			if warning := derive.CheckBudget(txn, a.Ledger.Transactions(), a.Ledger.Budgets(), a.Ledger.Categories(), time.Now()); warning != nil {
				fmt.Println(WarningStyle.Render(fmt.Sprintf(
					"Budget %q would be exceeded: %s spent + this = %s over the %s limit",
					warning.CategoryName,
					a.money(warning.CurrentSpent),
					a.money(warning.NewTotal-warning.Limit),
					a.money(warning.Limit))))
				if !force {
					return fmt.Errorf("refusing to exceed budget; re-run with --force to record anyway")
				}
			}

			saved, err := a.Ledger.AddTransaction(ctx, txn)
			if err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Recorded %s %s (%s)", saved.Type, a.money(saved.Amount), saved.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense, debt, transfer)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")
	cmd.Flags().StringVarP(&wallet, "wallet", "w", model.WalletCash, "source wallet id")
	cmd.Flags().StringVar(&destWallet, "to-wallet", "", "destination wallet id (transfers)")
	cmd.Flags().StringVar(&withPerson, "with", "", "counterparty name (debt)")
	cmd.Flags().BoolVar(&force, "force", false, "record even when a budget would be exceeded")

	return cmd
}

func txListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns := a.Ledger.Transactions()
			if len(txns) == 0 {
				fmt.Println(InfoStyle.Render("No transactions yet. Use 'moneyman tx add' to record one."))
				return nil
			}
			if limit > 0 && len(txns) > limit {
				txns = txns[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				HeaderStyle.Render("Date"),
				HeaderStyle.Render("Type"),
				HeaderStyle.Render("Amount"),
				HeaderStyle.Render("Category"),
				HeaderStyle.Render("Wallet"),
				HeaderStyle.Render("Note"))

			for _, t := range txns {
				walletCol := model.WalletName(t.WalletID)
				if t.Type == model.TypeTransfer {
					walletCol = fmt.Sprintf("%s → %s", model.WalletName(t.WalletID), model.WalletName(t.DestinationWalletID))
				}
				note := t.Note
				if t.WithPerson != "" {
					note = strings.TrimSpace(note + " [" + t.WithPerson + "]")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.Date, t.Type, a.money(t.Amount), a.categoryName(t.CategoryID), walletCol, note)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 30, "maximum rows to show (0 = all)")
	return cmd
}

func txEditCmd() *cobra.Command {
	var (
		amountExpr string
		category   string
		dateStr    string
		note       string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			var existing *model.Transaction
			for _, t := range a.Ledger.Transactions() {
				if t.ID == args[0] {
					existing = &t
					break
				}
			}
			if existing == nil {
				return fmt.Errorf("transaction %s not found", args[0])
			}

			updated := *existing
			if amountExpr != "" {
				if updated.Amount, err = calc.Eval(amountExpr); err != nil {
					return fmt.Errorf("invalid amount %q: %w", amountExpr, err)
				}
			}
			if category != "" {
				updated.CategoryID = category
			}
			if dateStr != "" {
				if updated.Date, err = model.ParseDate(dateStr); err != nil {
					return err
				}
			}
			if note != "" {
				updated.Note = note
			}

			// Edits re-run the budget gate; the check skips the row
			// being replaced so only the new amount counts.
			if amountExpr != "" || category != "" {
				if warning := derive.CheckBudget(updated, a.Ledger.Transactions(), a.Ledger.Budgets(), a.Ledger.Categories(), time.Now()); warning != nil {
					fmt.Println(WarningStyle.Render(fmt.Sprintf(
						"Budget %q would be exceeded: %s spent + this = %s over the %s limit",
						warning.CategoryName,
						a.money(warning.CurrentSpent),
						a.money(warning.NewTotal-warning.Limit),
						a.money(warning.Limit))))
					if !force {
						return fmt.Errorf("refusing to exceed budget; re-run with --force to apply anyway")
					}
				}
			}

			if err := a.Ledger.EditTransaction(ctx, existing.ID, updated); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render("Updated " + existing.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountExpr, "amount", "a", "", "new amount (expression allowed)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category id")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "new note")
	cmd.Flags().BoolVar(&force, "force", false, "apply even when a budget would be exceeded")

	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Ledger.RemoveTransaction(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render("Deleted " + args[0]))
			return nil
		},
	}
}
