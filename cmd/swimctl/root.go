package main

import (
	"fmt"

	"github.com/2beens/swimcoach/internal/config"
	"github.com/2beens/swimcoach/internal/db"
	"github.com/2beens/swimcoach/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configFlag string

	dbPool *pgxpool.Pool
)

var rootCmd = &cobra.Command{
	Use:   "swimctl",
	Short: "Maintenance tool for the swimcoach database",
	Long: `swimctl manages the swimcoach PostgreSQL database.

  $ swimctl migrate                 # apply the schema
  $ swimctl seed --athletes 8       # fill a dev database with fake data
  $ swimctl seed --truncate         # wipe all tables first

Connection settings come from the same config.toml and .env as the service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.Load(envFlag, configFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logging.Setup(logging.LoggerSetupParams{
			LogToStdout: true,
			LogLevel:    cfg.LogLevel,
		})

		dbPool, err = db.NewDBPool(cmd.Context(), db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBUser:     cfg.PostgresUser,
			DBPassword: cfg.PostgresPassword,
			DBName:     cfg.PostgresDB,
		})
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbPool != nil {
			dbPool.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "config environment [dev | prod | test]")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "./config.toml", "path for the TOML config file")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
