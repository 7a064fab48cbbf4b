// Package sqlite provides SQLite-based storage for sales records.
//
// SalesDB stores one row per sale in the sales table:
//
//	sales(id TEXT PRIMARY KEY, amount INTEGER, create_at TEXT)
//
// create_at is stored as "2006-01-02 15:04:05" in UTC so that range filters
// compare correctly as text. Every query is parameterised; values are never
// concatenated into SQL.
package sqlite
