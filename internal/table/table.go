// Package table holds the in-memory tabular model the cleaning engine
// operates on. Cells are plain strings; loaders coerce every input value to
// text so that representation differences (numeric vs. string encodings of
// the same term) never affect comparisons.
package table

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/maeasam/shataba/internal/loader"
)

// Table is a fully materialized table of named columns.
type Table struct {
	Headers []string
	Rows    [][]string
}

// New creates an empty table with the given column headers.
func New(headers []string) *Table {
	return &Table{Headers: headers}
}

// AppendRow adds a row, padding or truncating it to the header width so every
// row stays rectangular.
func (t *Table) AppendRow(row []string) {
	switch {
	case len(row) < len(t.Headers):
		padded := make([]string, len(t.Headers))
		copy(padded, row)
		row = padded
	case len(row) > len(t.Headers):
		row = row[:len(t.Headers)]
	}
	t.Rows = append(t.Rows, row)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the first column whose name matches the
// given name case-insensitively.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return i, true
		}
	}
	return 0, false
}

// Column returns a copy of the values in column i.
func (t *Table) Column(i int) []string {
	col := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = row[i]
	}
	return col
}

// Read loads a table from path, dispatching on the file extension:
// .xlsx workbooks via the XLSX loader, everything else as CSV.
func Read(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}

// ReadCSV loads a table from a CSV file. The first row is the header.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "table: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	header, rows, err := loader.ReadCSV(f, loader.CSVOptions{LazyQuotes: true})
	if err != nil {
		return nil, eris.Wrapf(err, "table: read %s", path)
	}

	t := New(header)
	for _, row := range rows {
		t.AppendRow(row)
	}
	return t, nil
}

// ReadXLSX loads a table from the first sheet of an XLSX workbook.
func ReadXLSX(path string) (*Table, error) {
	header, rows, err := loader.ReadXLSX(path, loader.XLSXOptions{})
	if err != nil {
		return nil, eris.Wrapf(err, "table: read %s", path)
	}

	t := New(header)
	for _, row := range rows {
		t.AppendRow(row)
	}
	return t, nil
}

// WriteCSV writes the table to path as CSV, header first.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "table: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(t.Headers); err != nil {
		return eris.Wrap(err, "table: write header")
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "table: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "table: flush")
}
