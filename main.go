package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/upparakash/AspireBrandApi/config"
	"github.com/upparakash/AspireBrandApi/database"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "aspire",
	Short: "Aspire Brand store API",
	Long: `Back office and storefront API for the Aspire Brand store: catalog,
customers, orders, Razorpay payments and stock.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

func main() {
	// Prices and totals go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect loads the configuration and opens the database.
func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, db, nil
}
