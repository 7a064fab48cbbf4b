// Package render turns a sales total into human-readable text and emits it.
//
// Renderers implement a single method, Render, and never write anywhere.
// Emission is a separate step handled by an Emitter, so the same rendered
// report can go to stdout, a file, an HTTP response, or several at once.
//
// Available formats:
//   - html: <h1>your sales: ¥1000</h1>
//   - text: Your sales: ¥1,000 (2025-04-01..2025-04-30)
//   - markdown: heading and summary table
//   - json: machine-readable summary
package render
