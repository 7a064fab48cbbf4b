// Package main provides the entry point for the salesreport CLI.
//
// salesreport records sales in a local SQLite database and reports the
// total for a date range as HTML, text, Markdown or JSON.
//
// Usage:
//
//	salesreport add --amount 1000 --at 2025-04-10
//	salesreport report --start 2025-04-01 --end 2025-04-30
//	salesreport serve --addr 127.0.0.1:8080
//
// See --help for all available options.
package main

func main() {
	Execute()
}
