package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/export"
	"github.com/MoneyManage/MoneyManage/internal/model"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if output == "" {
				output = fmt.Sprintf("moneyman-export-%s.csv", time.Now().Format("2006-01-02"))
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer func() { _ = f.Close() }()

			rows := export.TransactionRows(
				a.Ledger.Transactions(),
				export.CategoryLookup(a.Ledger.Categories()),
				model.WalletName,
			)
			if err := (export.CSVExporter{W: f}).Export(ctx, export.Header, rows); err != nil {
				return err
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Exported %d transactions to %s", len(rows), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default moneyman-export-<date>.csv)")
	return cmd
}
