package exporter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/errors"
)

// WorkbookWriter writes tabular data as single-sheet XLSX workbooks
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a new workbook writer instance
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// WriteSheet writes headers and rows to path as one worksheet. Cells
// holding numeric text become number cells; empty cells stay empty.
func (w *WorkbookWriter) WriteSheet(path, sheet string, headers []string, rows [][]string) error {
	w.logger.Debug("writing workbook",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("row_count", len(rows)))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.NewStorageError("failed to name worksheet", err)
	}

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return errors.NewStorageError("failed to write worksheet header row", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError("failed to compute cell coordinates", err)
		}

		cells := make([]interface{}, len(row))
		for j, value := range row {
			cells[j] = cellValue(value)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return errors.NewStorageError("failed to write worksheet data row", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err)
	}
	return nil
}

// cellValue maps a CSV cell to its typed spreadsheet value. The empty
// string is the null marker and yields an empty cell.
func cellValue(s string) interface{} {
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	return s
}
