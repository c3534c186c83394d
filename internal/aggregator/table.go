package aggregator

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/errors"
)

// Table is one per-file analysis table: its source name, header row and
// data rows.
type Table struct {
	Name    string // base name of the source file
	Headers []string
	Rows    [][]string
}

// ReadTable loads one persisted per-file table from a CSV file. A UTF-8
// BOM on the header row is tolerated. Rows may have uneven lengths;
// cells beyond a row's end read as missing during consolidation.
func ReadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open table "+filepath.Base(path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read table "+filepath.Base(path), err)
	}

	table := &Table{Name: filepath.Base(path)}
	if len(records) > 0 {
		table.Headers = records[0]
		if len(table.Headers) > 0 {
			table.Headers[0] = strings.TrimPrefix(table.Headers[0], "\uFEFF")
		}
		table.Rows = records[1:]
	}

	return table, nil
}

// columnIndex returns the position of name in the table's header row,
// or -1 when the column is absent
func (t *Table) columnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// filename derives the table's identity: the source base name with its
// extension and the given suffix stripped
func (t *Table) filename(suffix string) string {
	stem := strings.TrimSuffix(t.Name, filepath.Ext(t.Name))
	if suffix != "" {
		stem = strings.TrimSuffix(stem, suffix)
	}
	return stem
}
