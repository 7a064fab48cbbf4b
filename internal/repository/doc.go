// Package repository defines how sales totals are read from a backing store.
//
// Implementations live in sub-packages:
//   - sqlite: SQLite-backed store (modernc.org/sqlite)
//   - memory: in-process store for tests and demos
//
// Both sum the amount of every sale whose create_at falls on a day inside the
// requested range and return zero when no sale matches.
package repository
