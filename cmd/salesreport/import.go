package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/salesreport/internal/model"
	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import sales from a CSV file",
		Long: `Import reads rows of "amount,create_at" and records them in one transaction.

A first row whose amount column is not a number is treated as a header.
Either every row is imported or none is.

Example file:
  amount,create_at
  1000,2025-04-01 09:30:00
  250,2025-04-02`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}
	return cmd
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg.Verbose)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	sales, err := readSalesCSV(f, time.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
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

	if err := db.InsertSales(cmd.Context(), sales); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sales\n", len(sales))
	return nil
}

// readSalesCSV parses "amount,create_at" rows.
func readSalesCSV(r io.Reader, now time.Time) ([]model.Sale, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var sales []model.Sale
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		amount, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: invalid amount %q", line, record[0])
		}
		at, err := parseTimestamp(strings.TrimSpace(record[1]), now)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sales = append(sales, model.NewSale(model.Amount(amount), at))
	}
	return sales, nil
}
