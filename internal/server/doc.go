// Package server exposes sales reports over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /api/v1/sales?start=2025-04-01&end=2025-04-30&format=html
//	GET /api/v1/sales/breakdown?start=2025-03-01&end=2025-05-31&format=json
//
// A withheld report answers 204 No Content. A range rejected by the
// fiscal-year policy answers 422. Bad dates or formats answer 400 and
// data-access failures 500.
package server
