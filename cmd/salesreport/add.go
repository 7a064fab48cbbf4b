package main

import (
	"fmt"
	"time"

	"github.com/nao1215/salesreport/internal/model"
	"github.com/spf13/cobra"
)

// timestampLayouts are accepted by --at and the import command, before
// falling back to plain dates.
var timestampLayouts = []string{
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
}

// parseTimestamp parses a sale time. Plain dates mean midnight UTC.
func parseTimestamp(s string, now time.Time) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return model.ParseDate(s, now)
}

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a sale",
		Long: `Add records one sale in the sales database and prints its ID.

Examples:
  salesreport add --amount 1000
  salesreport add --amount 1000 --at 2025-04-10
  salesreport add --amount 250 --at "2025-04-10 13:45:00"`,
		Args: cobra.NoArgs,
		RunE: runAddCmd,
	}

	cmd.Flags().Int64P("amount", "a", 0, "Sale amount in the currency's base unit")
	cmd.Flags().String("at", "", "Sale time (RFC 3339, \"2006-01-02 15:04:05\" or a date; default: now)")
	_ = cmd.MarkFlagRequired("amount") //nolint:errcheck // flag defined above

	return cmd
}

// runAddCmd executes the add command.
func runAddCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg.Verbose)

	amount, err := cmd.Flags().GetInt64("amount")
	if err != nil {
		return err
	}
	atStr, err := cmd.Flags().GetString("at")
	if err != nil {
		return err
	}

	now := time.Now()
	at := now
	if atStr != "" {
		if at, err = parseTimestamp(atStr, now); err != nil {
			return fmt.Errorf("--at: %w", err)
		}
	}

	db, err := openSalesDB(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close database", "error", closeErr)
		}
	}()

	sale := model.NewSale(model.Amount(amount), at)
	if err := db.InsertSale(cmd.Context(), sale); err != nil {
		return err
	}
	logger.Info("sale recorded", "id", sale.ID, "amount", sale.Amount, "create_at", sale.CreateAt)

	fmt.Fprintln(cmd.OutOrStdout(), sale.ID)
	return nil
}
