package main

import (
	"github.com/2beens/swimcoach/internal/db"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the embedded schema. Every statement is idempotent, so running
migrate against an up to date database changes nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cmd.Context(), dbPool); err != nil {
			return err
		}
		color.Green("✓ schema applied")
		return nil
	},
}
