// Package exporter writes the pipeline's tabular outputs.
//
// This package contains three main components:
//
// CSVWriter: core CSV writing functionality with optional UTF-8 BOM for
// Excel compatibility.
//
// AnalysisExporter: writes one per-file analysis table, joining the
// track rows with the file's aggregate statistics at serialization time.
//
// WorkbookWriter: writes a consolidated table as a single-sheet XLSX
// workbook using numeric cells where the data allows.
package exporter
