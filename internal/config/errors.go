package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with errors.Is.
var (
	// ErrInvalidFormat is returned when the output format is not html, text, markdown or json.
	ErrInvalidFormat = errors.New("invalid format: expected html, text, markdown or json")

	// ErrInvalidLocale is returned when the locale is not en or ja.
	ErrInvalidLocale = errors.New("invalid locale: expected en or ja")

	// ErrEmptyCurrency is returned when the currency symbol is empty.
	ErrEmptyCurrency = errors.New("invalid currency: symbol must not be empty")

	// ErrInvalidFiscalStart is returned when the fiscal-year start is not a valid MM-DD.
	ErrInvalidFiscalStart = errors.New("invalid fiscal year start: expected MM-DD with day 1-28")

	// ErrInvalidBoundaryAction is returned when the boundary action is not withhold, reject or allow.
	ErrInvalidBoundaryAction = errors.New("invalid boundary action: expected withhold, reject or allow")

	// ErrInvalidConcurrency is returned when the breakdown concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrEmptyAddr is returned when the HTTP listen address is empty.
	ErrEmptyAddr = errors.New("invalid serve address: must not be empty")
)
