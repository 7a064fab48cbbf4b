// Package reporter combines a sales repository, a fiscal-year boundary
// policy and a renderer into a sales report.
//
// A Reporter does no SQL and no formatting itself. It validates the range,
// asks the policy whether the range may be queried, fetches the total from
// the repository and hands it to the renderer. Each collaborator can be
// replaced without touching the others.
//
// MonolithicReporter is the same feature written as one type that does all
// of those things inline. It is kept for comparison and produces identical
// HTML for identical data.
package reporter
