package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for salesreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salesreport",
		Short: "Report sales totals for a date range",
		Long: `salesreport records sales and reports the total for a date range.

Ranges that cross the start of the fiscal year (April 1 by default) are
withheld unless the configuration says otherwise. Use "breakdown" to get
one total per fiscal year instead.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .salesreport in current or home directory)")
	cmd.PersistentFlags().String("db-dir", "",
		"Directory of the sales database (default: XDG data directory)")

	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewBreakdownCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
