package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/calc"
	"github.com/MoneyManage/MoneyManage/internal/derive"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
		Long: `Set spending limits per category. A budget on a parent group also
absorbs spending in all of its child categories.`,
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetRemoveCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category-id> <limit>",
		Short: "Set or replace the budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			limit, err := calc.Eval(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			if err := a.Ledger.SetBudget(ctx, args[0], limit); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Budget for %s set to %s", a.categoryName(args[0]), a.money(limit))))
			return nil
		},
	}
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budget consumption for the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			statuses := derive.Budgets(a.Ledger.Budgets(), a.Ledger.Transactions(), a.Ledger.Categories(), time.Now())
			if len(statuses) == 0 {
				fmt.Println(InfoStyle.Render("No budgets set. Use 'moneyman budget set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				HeaderStyle.Render("Category"),
				HeaderStyle.Render("Limit"),
				HeaderStyle.Render("Spent"),
				HeaderStyle.Render("Remaining"),
				HeaderStyle.Render("Used"))

			for _, st := range statuses {
				used := fmt.Sprintf("%.0f%%", st.PercentClamped())
				if st.Over {
					used = ErrorStyle.Render(fmt.Sprintf("%.0f%% OVER", st.Percent))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					st.Category.Name, a.money(st.Limit), a.money(st.Spent), a.money(st.Remaining), used)
			}

			return nil
		},
	}
}

func budgetRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category-id>",
		Short: "Remove the budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Ledger.RemoveBudget(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render("Removed budget for " + args[0]))
			return nil
		},
	}
}
