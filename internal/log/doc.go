// Package log builds the slog loggers used by salesreport.
//
// Every logger wraps its handler in a RedactHandler, which masks attribute
// values that look like credentials: database DSNs with passwords, bearer
// tokens and anything logged under a key such as "password" or "token".
// Masking applies at every level, including debug.
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Info("opened database", "dsn", dsn) // dsn=***REDACTED***
//	slog.SetDefault(logger)
package log
