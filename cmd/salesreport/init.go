package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nao1215/salesreport/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/salesreport.yaml
var configTemplate []byte

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// dbDirPlaceholder is the commented dbDir line in the template.
var dbDirPlaceholder = []byte("# dbDir: /var/lib/salesreport")

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .salesreport file",
		Long: `Init writes a commented .salesreport file holding the defaults used by
report, breakdown and serve:

  dbDir           where the SQLite sales database lives
  report.*        output format, locale, currency symbol and copy file
  fiscal.*        fiscal-year start (MM-DD) and the onCross policy
                  (withhold, reject or allow)
  serve.addr      listen address of the HTTP API
  concurrency     fiscal years summed at once by breakdown

With --db-dir the database location is pinned in the file instead of
being left to the XDG data directory.

Examples:
  # Fiscal year starting April 1st, database under XDG_DATA_HOME
  salesreport init

  # Keep the database next to the project
  salesreport init --db-dir ./data

  # Replace an existing file
  salesreport init -o team.yaml -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	var dbDir string
	if f := cmd.Flag("db-dir"); f != nil && f.Changed {
		dbDir = f.Value.String()
	}

	if err := writeConfigTemplate(outputPath, renderConfigTemplate(dbDir), force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	if dbDir != "" {
		fmt.Fprintf(out, "Sales database directory: %s\n", dbDir)
	}
	fmt.Fprintln(out, "Adjust fiscal.yearStart and fiscal.onCross before the first report.")
	return nil
}

// renderConfigTemplate returns the template with dbDir set when dbDir is
// not empty.
func renderConfigTemplate(dbDir string) []byte {
	if dbDir == "" {
		return configTemplate
	}
	line := []byte("dbDir: " + strconv.Quote(dbDir))
	return bytes.Replace(configTemplate, dbDirPlaceholder, line, 1)
}

// writeConfigTemplate creates path and its parent directories. An existing
// file is kept unless force is set.
func writeConfigTemplate(path string, content []byte, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}
