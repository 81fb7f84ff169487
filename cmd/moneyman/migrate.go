package main

import (
	"fmt"

	"github.com/MoneyManage/MoneyManage/internal/config"
	"github.com/MoneyManage/MoneyManage/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Migrations also run automatically when any command opens the database;
this exists to run them explicitly, e.g. after restoring a database file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			dbPath := config.ExpandPath(viper.GetString("database.path"))
			store, err := storage.NewStore(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Database at %s is at schema version %d", dbPath, storage.ExpectedSchemaVersion)))
			return nil
		},
	}
}
