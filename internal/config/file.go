package config

// File represents the structure of the configuration file.
// Both .salesreport (YAML) and *.toml files decode into it.
type File struct {
	// DBDir overrides the database directory.
	DBDir string `yaml:"dbDir,omitempty" toml:"db_dir"`

	// Report holds rendering settings.
	Report ReportSection `yaml:"report,omitempty" toml:"report"`

	// Fiscal holds fiscal-year settings.
	Fiscal FiscalSection `yaml:"fiscal,omitempty" toml:"fiscal"`

	// Serve holds HTTP server settings.
	Serve ServeSection `yaml:"serve,omitempty" toml:"serve"`

	// Concurrency overrides the breakdown concurrency.
	Concurrency int `yaml:"concurrency,omitempty" toml:"concurrency"`
}

// ReportSection configures rendering.
type ReportSection struct {
	Format   string `yaml:"format,omitempty" toml:"format"`
	Locale   string `yaml:"locale,omitempty" toml:"locale"`
	Currency string `yaml:"currency,omitempty" toml:"currency"`
	Output   string `yaml:"output,omitempty" toml:"output"`
}

// FiscalSection configures the fiscal-year boundary policy.
type FiscalSection struct {
	// YearStart is the first day of the fiscal year, e.g. "04-01".
	YearStart string `yaml:"yearStart,omitempty" toml:"year_start"`

	// OnCross is withhold, reject or allow.
	OnCross string `yaml:"onCross,omitempty" toml:"on_cross"`
}

// ServeSection configures the HTTP server.
type ServeSection struct {
	Addr string `yaml:"addr,omitempty" toml:"addr"`
}

// Apply overlays every non-zero value of the file onto cfg.
// CLI flags are applied afterwards and take precedence.
func (f *File) Apply(cfg *Config) {
	if f == nil || cfg == nil {
		return
	}
	setString(&cfg.DBDir, f.DBDir)
	setString(&cfg.Format, f.Report.Format)
	setString(&cfg.Locale, f.Report.Locale)
	setString(&cfg.Currency, f.Report.Currency)
	setString(&cfg.OutputFile, f.Report.Output)
	setString(&cfg.FiscalYearStart, f.Fiscal.YearStart)
	setString(&cfg.BoundaryAction, f.Fiscal.OnCross)
	setString(&cfg.ServeAddr, f.Serve.Addr)
	if f.Concurrency != 0 {
		cfg.Concurrency = f.Concurrency
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
