// Package aggregator merges many per-file analysis tables into one
// consolidated summary table with a single representative row per file.
//
// A table that cannot be read is skipped without aborting the run. A
// selected column missing from a table becomes a null marker, as does
// every cell of a table with no data rows. Output rows are sorted
// ascending by filename.
package aggregator
