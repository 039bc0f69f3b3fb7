package models

import "strings"

// Column names of the raw car equipment schema, in persisted order.
var CarColumns = []string{
	"car_id",
	"make",
	"model",
	"model_year",
	"trim_level",
	"exterior_color",
	"transmission",
	"fuel_type",
	"infotainment_system",
	"msrp",
}

// Table is an ordered, in-memory tabular dataset. Rows are never mutated
// after construction; duplicates are allowed by design.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// NewTable returns an empty table with the given column schema.
func NewTable(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Append adds one row. The caller is responsible for matching the schema.
func (t *Table) Append(row []Value) {
	t.Rows = append(t.Rows, row)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all cells of the named column, or nil when absent.
func (t *Table) Column(name string) []Value {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	col := make([]Value, 0, len(t.Rows))
	for _, row := range t.Rows {
		col = append(col, row[idx])
	}
	return col
}

// Fingerprint renders a full row into a single comparable key. The unit
// separator keeps cell boundaries unambiguous; the kind prefix keeps the
// integer 2019 distinct from the text "2019".
func Fingerprint(row []Value) string {
	var b strings.Builder
	for i, v := range row {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(v.Kind().String())
		b.WriteByte(':')
		b.WriteString(v.String())
	}
	return b.String()
}

// Clone returns a copy of the row slice suitable for verbatim duplication.
func Clone(row []Value) []Value {
	return append([]Value(nil), row...)
}
