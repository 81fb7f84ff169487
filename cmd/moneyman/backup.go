package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/backup"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a full JSON snapshot of the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := backup.Encode(a.Ledger.Snapshot())
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("moneyman-backup-%s.json", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Backed up %d transactions to %s", len(a.Ledger.Transactions()), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default moneyman-backup-<date>.json)")
	return cmd
}

func restoreCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore collections from a snapshot file",
		Long: `Restore from a snapshot produced by 'moneyman backup'. Every collection
present in the file replaces the current one wholesale; absent collections are
left untouched. Legacy bare-array files restore transactions only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			snap, err := backup.Decode(data)
			if err != nil {
				return err
			}

			if !yes {
				fmt.Println(WarningStyle.Render("This replaces current data with the snapshot contents."))
				fmt.Print("Continue? [y/N] ")
				var answer string
				_, _ = fmt.Scanln(&answer)
				if answer != "y" && answer != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			bar := progressbar.NewOptions(len(snap.Collections()),
				progressbar.OptionSetDescription("Restoring"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			err = a.Ledger.RestoreWithProgress(ctx, snap, func(collection string) {
				bar.Describe("Restoring " + collection)
				_ = bar.Add(1)
			})
			_ = bar.Finish()
			if err != nil {
				// Memory is updated even when a flush failed; report and go on.
				fmt.Println(WarningStyle.Render(err.Error()))
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Restored snapshot (%d transactions now in the ledger)", len(a.Ledger.Transactions()))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
