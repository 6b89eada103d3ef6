// Package render turns a compact column specification into a rendering plan
// for the job report table.
//
// # Overview
//
// A format string like "JobID%>,State,Elapsed%>,CPUEff,MemEff" lists the
// columns to display. Each comma-separated token has the form
// NAME[%[ALIGN]WIDTH]: ALIGN is one of < (left), ^ (center, default), or
// > (right), and WIDTH is a non-negative integer. Omitting WIDTH defers it
// to render time, when it becomes the widest cell in the column.
//
// # Plan Construction
//
// NewPlan performs, in order:
//
//  1. Parse the format string into ColumnSpecs (malformed token: FormatError)
//  2. Canonicalize each title case-insensitively against the vocabulary plus
//     the derived-field catalog keys (no match: UnknownTitleError)
//  3. Prepend any missing always-included columns (JobID right-aligned, then
//     State), unless the format was a single scripting token
//  4. Resolve the query-column set: derived titles expand to their raw field
//     prerequisites, the required identification fields are appended, and
//     the result is deduplicated
//
// The plan is then read-only apart from width back-fill on first render, so
// concurrent reports need separate plans.
//
// # Derived Fields
//
// CPUEff, MemEff, and TimeEff are computed by the job package rather than
// fetched from sacct. This package only knows their names and which raw
// fields they need; their values arrive in the Row maps like any other
// column.
//
// # Rendering
//
// RenderTable writes a bold header followed by one line per job, columns
// separated by two spaces, each cell truncated and padded to the column
// width. A HighlightFunc supplied by the caller may color individual cells;
// coloring never changes widths. Parsable mode drops padding and styling and
// joins raw values with pipes.
package render
