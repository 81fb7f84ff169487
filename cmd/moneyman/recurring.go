package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MoneyManage/MoneyManage/internal/calc"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/spf13/cobra"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring transaction templates",
		Long: `Templates describe a schedule (daily, weekly, monthly, yearly) and what
would be recorded. They never create transactions by themselves.`,
	}

	cmd.AddCommand(recurringAddCmd())
	cmd.AddCommand(recurringListCmd())
	cmd.AddCommand(recurringDeleteCmd())

	return cmd
}

func recurringAddCmd() *cobra.Command {
	var (
		txType    string
		category  string
		frequency string
		startStr  string
		note      string
		wallet    string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Create a recurring template",
		Args:  cobra.ExactArgs(1),
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

			rec := model.RecurringTransaction{
				Amount:     amount,
				Type:       model.TransactionType(txType),
				CategoryID: category,
				Frequency:  model.RecurrenceFrequency(frequency),
				Note:       note,
				WalletID:   wallet,
			}
			if startStr != "" {
				if rec.StartDate, err = model.ParseDate(startStr); err != nil {
					return err
				}
			}

			saved, err := a.Ledger.AddRecurring(ctx, rec)
			if err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Created %s template for %s, next due %s (%s)",
				saved.Frequency, a.money(saved.Amount), saved.NextDueDate, saved.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "monthly", "schedule (daily, weekly, monthly, yearly)")
	cmd.Flags().StringVarP(&startStr, "start", "d", "", "start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")
	cmd.Flags().StringVarP(&wallet, "wallet", "w", model.WalletCash, "wallet id")

	return cmd
}

func recurringListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			recs := a.Ledger.Recurring()
			if len(recs) == 0 {
				fmt.Println(InfoStyle.Render("No recurring templates. Use 'moneyman recurring add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				HeaderStyle.Render("ID"),
				HeaderStyle.Render("Type"),
				HeaderStyle.Render("Amount"),
				HeaderStyle.Render("Category"),
				HeaderStyle.Render("Frequency"),
				HeaderStyle.Render("Next due"))

			for _, r := range recs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Type, a.money(r.Amount), a.categoryName(r.CategoryID), r.Frequency, r.NextDueDate)
			}

			return nil
		},
	}
}

func recurringDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recurring template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Ledger.RemoveRecurring(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render("Deleted " + args[0]))
			return nil
		},
	}
}
