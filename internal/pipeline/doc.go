// Package pipeline orchestrates the end-to-end tracking workflow: XML
// discovery, track extraction, per-file analysis tables, and the
// consolidated summary built from those tables.
//
// The pipeline processes files sequentially and isolates failures. A
// file that cannot be parsed, contains no tracks, or fails to write is
// recorded in its FileResult and skipped; the run continues with the
// remaining files. Only discovery failures abort a run.
//
// Commands construct one Pipeline per run and call Analyze,
// Consolidate, or Batch with explicit options. All paths, patterns,
// and column selections come from the caller; the pipeline holds no
// configuration of its own beyond defaults for omitted fields.
package pipeline
