// Package fiscal decides what happens to a sales query whose date range
// straddles a fiscal-year boundary.
//
// Reports in many Japanese companies are cut on March 31 / April 1. A range
// such as 3/25..4/5 mixes two fiscal years, and the reporter asks a Policy
// whether to query it, withhold it (return an empty report), or reject it.
//
// Usage:
//
//	policy := fiscal.NewBoundaryPolicy(fiscal.DefaultYearStart, fiscal.ActionWithhold)
//	decision := policy.Evaluate(rng)
//	if decision.Action != fiscal.ActionQuery {
//	    // short-circuit
//	}
package fiscal
