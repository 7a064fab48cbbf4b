// Package model defines the core data structures used throughout salesreport.
//
// This package contains the following main types:
//   - DateRange: An inclusive pair of calendar dates
//   - Sale: A single recorded sale
//   - SalesTotal: The summed amount for one DateRange
//   - Report: A rendered sales report ready to be emitted
//
// The repository, fiscal, render and reporter packages all depend on these
// types, so they live here to keep the import graph acyclic.
package model
