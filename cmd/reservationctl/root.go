package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sarpras/reservation-service/pkg/logger"
	"github.com/sarpras/reservation-service/pkg/postgres"
	"github.com/sarpras/reservation-service/reservation/config"
)

var (
	verbose bool
	cfg     config.Config
	log     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "reservationctl",
	Short: "Maintenance tool for the equipment reservation service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.WarnLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		cfg = config.NewConfig(config.WithLogLevel(level))
		log = logger.NewLogger(cfg.Log, "reservationctl")
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func openDB(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := postgres.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Database.Host, err)
	}
	return pool, nil
}
