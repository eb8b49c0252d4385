package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/journal_posting/pkg/database"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations to the configured store",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	driver, dsn := migrationTarget(cfg)
	applied, err := database.MigrateUp(driver, dsn)
	if err != nil {
		return err
	}
	if applied {
		fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "No new migrations to apply")
	}
	return nil
}
