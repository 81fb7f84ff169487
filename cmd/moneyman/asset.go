package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MoneyManage/MoneyManage/internal/calc"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/spf13/cobra"
)

func assetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Track assets outside the transaction log",
		Long: `Record manually valued holdings like gold, property, stocks or savings
deposits. Asset values feed into net worth alongside wallet balances.`,
	}

	cmd.AddCommand(assetAddCmd())
	cmd.AddCommand(assetListCmd())
	cmd.AddCommand(assetEditCmd())
	cmd.AddCommand(assetDeleteCmd())

	return cmd
}

func assetAddCmd() *cobra.Command {
	var (
		assetType string
		note      string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <value>",
		Short: "Add an asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			value, err := calc.Eval(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			saved, err := a.Ledger.AddAsset(ctx, model.Asset{
				Name:  args[0],
				Value: value,
				Type:  model.AssetType(assetType),
				Note:  note,
			})
			if err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Added %s worth %s (%s)", saved.Name, a.money(saved.Value), saved.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&assetType, "type", "t", string(model.AssetOther), "asset type (gold, real_estate, stock, crypto, saving, cash, other)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")

	return cmd
}

func assetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked assets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			assets := a.Ledger.Assets()
			if len(assets) == 0 {
				fmt.Println(InfoStyle.Render("No assets tracked yet. Use 'moneyman asset add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				HeaderStyle.Render("ID"),
				HeaderStyle.Render("Name"),
				HeaderStyle.Render("Type"),
				HeaderStyle.Render("Value"),
				HeaderStyle.Render("Updated"))

			var total float64
			for _, asset := range assets {
				total += asset.Value
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					asset.ID, asset.Name, asset.Type, a.money(asset.Value), asset.UpdatedAt.Format("2006-01-02"))
			}
			fmt.Fprintf(w, "\t%s\t\t%s\t\n", HeaderStyle.Render("Total"), a.money(total))

			return nil
		},
	}
}

func assetEditCmd() *cobra.Command {
	var (
		name      string
		valueExpr string
		assetType string
		note      string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an asset's value or details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			var existing *model.Asset
			for _, asset := range a.Ledger.Assets() {
				if asset.ID == args[0] {
					existing = &asset
					break
				}
			}
			if existing == nil {
				return fmt.Errorf("asset %s not found", args[0])
			}

			updated := *existing
			if name != "" {
				updated.Name = name
			}
			if valueExpr != "" {
				if updated.Value, err = calc.Eval(valueExpr); err != nil {
					return fmt.Errorf("invalid value %q: %w", valueExpr, err)
				}
			}
			if assetType != "" {
				updated.Type = model.AssetType(assetType)
			}
			if note != "" {
				updated.Note = note
			}

			if err := a.Ledger.EditAsset(ctx, existing.ID, updated); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Updated %s to %s", updated.Name, a.money(updated.Value))))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVarP(&valueExpr, "value", "v", "", "new value (expression allowed)")
	cmd.Flags().StringVarP(&assetType, "type", "t", "", "new asset type")
	cmd.Flags().StringVarP(&note, "note", "n", "", "new note")

	return cmd
}

func assetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Ledger.RemoveAsset(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render("Deleted " + args[0]))
			return nil
		},
	}
}
