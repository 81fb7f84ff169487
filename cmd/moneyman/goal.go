package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MoneyManage/MoneyManage/internal/calc"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/spf13/cobra"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalDepositCmd())
	cmd.AddCommand(goalListCmd())
	cmd.AddCommand(goalDeleteCmd())

	return cmd
}

func goalAddCmd() *cobra.Command {
	var (
		deadline string
		icon     string
		color    string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			target, err := calc.Eval(args[1])
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", args[1], err)
			}

			goal := model.SavingsGoal{
				Name:         args[0],
				TargetAmount: target,
				Icon:         icon,
				Color:        color,
			}
			if deadline != "" {
				d, err := model.ParseDate(deadline)
				if err != nil {
					return err
				}
				goal.Deadline = &d
			}

			saved, err := a.Ledger.AddGoal(ctx, goal)
			if err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Created goal %q targeting %s (%s)", saved.Name, a.money(saved.TargetAmount), saved.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon")
	cmd.Flags().StringVar(&color, "color", "", "display color")

	return cmd
}

func goalDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <goal-id> <amount>",
		Short: "Add money toward a goal",
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

			goal, err := a.Ledger.Deposit(ctx, args[0], amount)
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("Deposited %s into %q (%s / %s)",
				a.money(amount), goal.Name, a.money(goal.CurrentAmount), a.money(goal.TargetAmount))
			fmt.Println(SuccessStyle.Render(msg))
			if goal.Status == model.GoalCompleted {
				fmt.Println(SuccessStyle.Render("🎉 Goal completed!"))
			}
			return nil
		},
	}
}

func goalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals and their progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			goals := a.Ledger.Goals()
			if len(goals) == 0 {
				fmt.Println(InfoStyle.Render("No savings goals yet. Use 'moneyman goal add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				HeaderStyle.Render("ID"),
				HeaderStyle.Render("Name"),
				HeaderStyle.Render("Saved"),
				HeaderStyle.Render("Target"),
				HeaderStyle.Render("Progress"),
				HeaderStyle.Render("Deadline"))

			for _, g := range goals {
				progress := fmt.Sprintf("%.0f%%", g.Progress())
				if g.Status == model.GoalCompleted {
					progress = SuccessStyle.Render("done")
				}
				deadline := "-"
				if g.Deadline != nil {
					deadline = g.Deadline.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					g.ID, g.Name, a.money(g.CurrentAmount), a.money(g.TargetAmount), progress, deadline)
			}

			return nil
		},
	}
}

func goalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Ledger.RemoveGoal(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render("Deleted " + args[0]))
			return nil
		},
	}
}
