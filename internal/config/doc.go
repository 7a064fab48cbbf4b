// Package config provides configuration structures and utilities for salesreport.
// It defines where sales are stored, how reports are rendered, and how
// ranges crossing a fiscal-year boundary are handled.
package config
