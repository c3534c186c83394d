// Package files locates the pipeline's input files on disk: tracking
// XML exports to analyze and persisted per-file tables to consolidate.
// Results are returned in deterministic lexicographic order.
package files
