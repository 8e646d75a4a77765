package core

import "fmt"

// Table is an in-memory ordered collection of rows sharing a fixed
// column schema. Every row has exactly len(Columns) cells, in column
// order. Stages replace tables wholesale rather than mutating rows in
// place.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// NewTable creates an empty table with the given column schema.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// AppendRow adds a row, enforcing the schema invariant.
func (t *Table) AppendRow(cells []Cell) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.Columns))
	}
	t.Rows = append(t.Rows, cells)
	return nil
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the column count.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Equal reports whether two tables have the same columns, the same
// rows, in the same order.
func (t *Table) Equal(o *Table) bool {
	if len(t.Columns) != len(o.Columns) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i, c := range t.Columns {
		if o.Columns[i] != c {
			return false
		}
	}
	for i, row := range t.Rows {
		for j, cell := range row {
			if !cell.Equal(o.Rows[i][j]) {
				return false
			}
		}
	}
	return true
}
