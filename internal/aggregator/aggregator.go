package aggregator

import (
	"context"
	"log/slog"
	"sort"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/trackdata"
)

// NullMarker is the cell value used for a selected column that is
// absent from a source table. It serializes to an empty CSV field and
// an empty spreadsheet cell.
const NullMarker = ""

// Consolidated is the merged cross-file summary table. Headers are
// always [filename, <selected columns in caller order>] and rows are
// sorted ascending by filename.
type Consolidated struct {
	Headers []string
	Rows    [][]string
	Skipped int // tables that failed to load
}

// Aggregator builds consolidated summary tables from per-file tables.
type Aggregator struct {
	logger *slog.Logger
}

// New creates a new aggregator.
func New(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// Consolidate reads every table at paths and merges them. A table that
// fails to load is logged, counted as skipped and excluded; it never
// aborts the remaining tables.
func (a *Aggregator) Consolidate(ctx context.Context, paths []string, columns []string, suffix string) *Consolidated {
	tables := make([]Table, 0, len(paths))
	skipped := 0

	for _, path := range paths {
		table, err := ReadTable(path)
		if err != nil {
			a.logger.WarnContext(ctx, "skipping unreadable table",
				slog.String("path", path),
				slog.String("error", err.Error()))
			skipped++
			continue
		}
		tables = append(tables, *table)
	}

	result := a.ConsolidateTables(ctx, tables, columns, suffix)
	result.Skipped += skipped
	return result
}

// ConsolidateTables merges already-loaded tables into one consolidated
// table with exactly one row per input table.
func (a *Aggregator) ConsolidateTables(ctx context.Context, tables []Table, columns []string, suffix string) *Consolidated {
	result := &Consolidated{
		Headers: append([]string{trackdata.ColFilename}, columns...),
		Rows:    make([][]string, 0, len(tables)),
	}

	for _, table := range tables {
		row := append([]string{table.filename(suffix)}, representativeRow(&table, columns)...)
		result.Rows = append(result.Rows, row)
	}

	// Stable so tables reducing to the same filename keep input order
	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i][0] < result.Rows[j][0]
	})

	a.logger.InfoContext(ctx, "consolidated summary tables",
		slog.Int("table_count", len(tables)),
		slog.Int("row_count", len(result.Rows)),
		slog.Int("skipped", result.Skipped))

	return result
}

// representativeRow extracts the selected columns from table. All rows
// of a well-formed table share identical summary values, so
// deduplicating by the selected tuple and taking the first distinct row
// reduces to reading the first data row. A table with no data rows
// yields an all-null row; a missing column yields a null marker cell.
func representativeRow(table *Table, columns []string) []string {
	cells := make([]string, len(columns))

	if len(table.Rows) == 0 {
		for i := range cells {
			cells[i] = NullMarker
		}
		return cells
	}

	first := table.Rows[0]
	for i, column := range columns {
		idx := table.columnIndex(column)
		if idx < 0 || idx >= len(first) {
			cells[i] = NullMarker
			continue
		}
		cells[i] = first[idx]
	}

	return cells
}
