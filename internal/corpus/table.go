package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a loaded tabular source: normalized header names and string cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the index of the named column after normalization, or -1.
func (t *Table) Column(name string) int {
	name = normalizeHeader(name)
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// LoadTable reads a csv, xlsx, or xls file. The first row is the header;
// header names are case-folded and trimmed. Cells are kept as strings, so
// numeric answer codes arrive already coerced.
func LoadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xls":
		return loadExcel(path)
	}
	return nil, fmt.Errorf("unsupported table format: %s", filepath.Ext(path))
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return tableFromRecords(records)
}

func loadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	return tableFromRecords(rows)
}

func tableFromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}
	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		columns[i] = normalizeHeader(h)
	}
	return &Table{Columns: columns, Rows: records[1:]}, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
