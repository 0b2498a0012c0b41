// Package table provides the read-only data table replayed by the sequencer.
//
// A [Table] is loaded once from a spreadsheet ([ExcelSource]) or a CSV file
// ([CSVSource]) and is never mutated afterwards. The first row of a sheet is
// the header; its cells become the column names.
package table

import (
	"errors"
	"fmt"
)

// ErrLoad is matched by every [LoadError].
var ErrLoad = errors.New("failed to load table")

// LoadError reports a failure to read a sheet or its sheet list.
type LoadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("failed to load sheet %q from %s: %v", e.Sheet, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoad) true.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// Table is an immutable 2-D dataset with named columns.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a table. Column names must be non-empty and unique. Rows shorter
// than the header are padded with empty cells; longer rows are truncated.
func New(columns []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("column %d has an empty header", i+1)
		}
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		index[c] = i
	}

	t := &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    make([][]string, len(rows)),
	}
	for i, r := range rows {
		row := make([]string, len(columns))
		copy(row, r)
		t.rows[i] = row
	}
	return t, nil
}

// Columns returns the column names in sheet order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether name is a column of the table.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Cell returns the text of the cell at row (0-based) in column.
func (t *Table) Cell(row int, column string) (string, error) {
	col, ok := t.index[column]
	if !ok {
		return "", fmt.Errorf("unknown column %q", column)
	}
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("row %d out of range (table has %d rows)", row+1, len(t.rows))
	}
	return t.rows[row][col], nil
}

// Row returns the cells of row (0-based) keyed by column name, or nil when
// row is out of range.
func (t *Table) Row(row int) map[string]string {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	out := make(map[string]string, len(t.columns))
	for i, c := range t.columns {
		out[c] = t.rows[row][i]
	}
	return out
}

// fromRecords splits raw sheet records into header and data rows.
func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("sheet is empty")
	}
	return New(records[0], records[1:])
}
