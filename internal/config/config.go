package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/salesreport/internal/fiscal"
	"github.com/nao1215/salesreport/internal/render"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "salesreport"

	// DefaultFormat renders the report as an HTML heading.
	DefaultFormat = render.FormatHTML

	// DefaultLocale is English.
	DefaultLocale = "en"

	// DefaultCurrency is the yen sign. Amounts are stored in yen.
	DefaultCurrency = render.DefaultCurrencySymbol

	// DefaultFiscalYearStart is April 1, the start of the Japanese fiscal year.
	DefaultFiscalYearStart = "04-01"

	// DefaultBoundaryAction withholds reports whose range crosses the fiscal-year start.
	DefaultBoundaryAction = "withhold"

	// DefaultConcurrency is the number of fiscal-year segments queried at once by breakdown.
	DefaultConcurrency = 4

	// DefaultServeAddr is the listen address of the HTTP server.
	DefaultServeAddr = "127.0.0.1:8080"
)

// Config holds all configuration options for salesreport.
// It is populated from defaults, then the config file, then CLI flags,
// and passed down explicitly rather than kept in global state.
type Config struct {
	// DBDir is the directory holding the SQLite sales database.
	// Defaults to the XDG data directory (~/.local/share/salesreport on Linux).
	DBDir string

	// Format is the output format: html, text, markdown or json.
	Format string

	// Locale selects the language of report labels (en or ja).
	Locale string

	// Currency is the symbol printed before amounts.
	Currency string

	// FiscalYearStart is the first day of the fiscal year in MM-DD form.
	FiscalYearStart string

	// BoundaryAction decides what happens when a range crosses FiscalYearStart:
	// withhold (empty report), reject (error) or allow (query anyway).
	BoundaryAction string

	// OutputFile, when set, receives the report in addition to stdout.
	OutputFile string

	// Concurrency is the number of segment queries breakdown runs at once.
	Concurrency int

	// ServeAddr is the HTTP listen address for the serve command.
	ServeAddr string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .salesreport in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DBDir:           XDGDataDir(),
		Format:          DefaultFormat,
		Locale:          DefaultLocale,
		Currency:        DefaultCurrency,
		FiscalYearStart: DefaultFiscalYearStart,
		BoundaryAction:  DefaultBoundaryAction,
		Concurrency:     DefaultConcurrency,
		ServeAddr:       DefaultServeAddr,
	}
}

// XDGDataDir returns the XDG data directory for salesreport.
// On Linux: ~/.local/share/salesreport
// On macOS: ~/Library/Application Support/salesreport
// On Windows: %LOCALAPPDATA%\salesreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for salesreport.
// On Linux: ~/.config/salesreport
// On macOS: ~/Library/Application Support/salesreport
// On Windows: %APPDATA%\salesreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := render.New(c.Format); err != nil || c.Format == "" {
		return ErrInvalidFormat
	}

	if _, err := render.ParseLocale(c.Locale); err != nil {
		return ErrInvalidLocale
	}

	if c.Currency == "" {
		return ErrEmptyCurrency
	}

	if _, err := fiscal.ParseMonthDay(c.FiscalYearStart); err != nil {
		return ErrInvalidFiscalStart
	}

	if _, err := fiscal.ParseAction(c.BoundaryAction); err != nil {
		return ErrInvalidBoundaryAction
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.ServeAddr == "" {
		return ErrEmptyAddr
	}

	return nil
}

// Policy builds the fiscal-year boundary policy described by the configuration.
// Call Validate first; invalid values fall back to the defaults.
func (c *Config) Policy() *fiscal.BoundaryPolicy {
	start, err := fiscal.ParseMonthDay(c.FiscalYearStart)
	if err != nil {
		start = fiscal.DefaultYearStart
	}
	action, err := fiscal.ParseAction(c.BoundaryAction)
	if err != nil {
		action = fiscal.ActionWithhold
	}
	return fiscal.NewBoundaryPolicy(start, action)
}

// Renderer builds the renderer for Format, Locale and Currency.
// color enables ANSI colour where the format supports it.
func (c *Config) Renderer(color bool) (render.Renderer, error) {
	return c.RendererFor(c.Format, color)
}

// RendererFor builds a renderer for format using the configured Locale and Currency.
func (c *Config) RendererFor(format string, color bool) (render.Renderer, error) {
	tag, err := render.ParseLocale(c.Locale)
	if err != nil {
		return nil, err
	}
	return render.New(format,
		render.WithLocale(tag),
		render.WithCurrency(c.Currency),
		render.WithColor(color),
	)
}
