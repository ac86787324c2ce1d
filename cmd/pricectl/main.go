package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agroledger/internal/config"
	"agroledger/internal/database"
	"agroledger/internal/logger"
	"agroledger/internal/repository"
	"agroledger/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// actorCLI marks audit entries written by this tool.
const actorCLI = "pricectl"

var (
	envFile string
	cfg     config.Config
	rootCmd = &cobra.Command{
		Use:   "pricectl",
		Short: "Operator tool for the agroledger price intelligence service",
		Long: `pricectl imports historical trip exports into the ledger and runs the
price analyses (forecast, best weekday, seasonality, year comparison) from
the terminal.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file read before the environment")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(productsCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(viper.GetViper(), envFile)
	if err != nil {
		return err
	}
	if err := logger.Setup(loaded.LogLevel, loaded.LogFormat); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	cfg = loaded
	return nil
}

// services is the slice of the application the commands need.
type services struct {
	prices  service.PriceService
	imports service.ImportService
}

func openServices() (*services, error) {
	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Debug().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("connected to PostgreSQL")

	tripRepo := repository.NewTripRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	// One-shot process, nothing to keep warm
	prices := service.NewPriceService(tripRepo, service.PriceServiceOptions{CacheTTL: -1})
	return &services{
		prices:  prices,
		imports: service.NewImportService(tripRepo, auditRepo, txManager, prices, nil),
	}, nil
}
