package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/spf13/cobra"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage the category taxonomy",
		Long: `Categories form a two-level forest per namespace (expense, income, debt).
The debt namespace carries a fixed direction vocabulary and should not be edited.`,
	}

	cmd.AddCommand(categoryListCmd())
	cmd.AddCommand(categoryAddCmd())
	cmd.AddCommand(categoryDeleteCmd())

	return cmd
}

func categoryListCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories by namespace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			ns := model.CategoryNamespace(namespace)
			if !ns.Valid() {
				return fmt.Errorf("unknown namespace %q (expense, income, debt)", namespace)
			}

			items := a.Ledger.Categories().Namespace(ns)
			if len(items) == 0 {
				fmt.Println(InfoStyle.Render("No categories in " + namespace + "."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				HeaderStyle.Render("ID"),
				HeaderStyle.Render("Name"),
				HeaderStyle.Render("Parent"))

			// Groups first, then their children indented beneath them.
			for _, item := range items {
				if item.ParentID != "" {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t\n", item.ID, item.Name)
				for _, child := range items {
					if child.ParentID == item.ID {
						fmt.Fprintf(w, "%s\t  %s\t%s\n", child.ID, child.Name, item.Name)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "s", string(model.NamespaceExpense), "namespace (expense, income, debt)")
	return cmd
}

func categoryAddCmd() *cobra.Command {
	var (
		namespace string
		parent    string
		id        string
		icon      string
		color     string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			item, err := a.Ledger.AddCategory(ctx, model.CategoryNamespace(namespace), model.CategoryItem{
				ID:       id,
				Name:     args[0],
				ParentID: parent,
				Icon:     icon,
				Color:    color,
			})
			if err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Added %s category %q (%s)", namespace, item.Name, item.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "s", string(model.NamespaceExpense), "namespace (expense, income, debt)")
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "parent category id (makes this a child)")
	cmd.Flags().StringVar(&id, "id", "", "explicit id (default generated)")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon")
	cmd.Flags().StringVar(&color, "color", "", "display color")

	return cmd
}

func categoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category by id. Children of a deleted group become top-level
groups; transactions keep the old id and show under "Other" from then on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Ledger.DeleteCategory(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render("Deleted " + args[0]))
			return nil
		},
	}
}
