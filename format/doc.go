// Package format renders log records into aligned, tabular, compact, colored,
// or JSON text lines.
//
// Formatters are pure values: a Config is fixed at construction and a single
// formatter may render records from many goroutines concurrently. Field widths
// are minimums, never maximums: a value longer than its column is emitted in
// full rather than truncated, so a row may grow uneven but no information is
// lost.
//
// Prefer the New factory for the preconfigured styles and construct formatters
// directly only when a caller needs full control over the field layout.
package format
