package tabular

// ColumnType identifies the inferred type of a column.
type ColumnType string

const (
	TypeInt64   ColumnType = "int64"
	TypeFloat64 ColumnType = "float64"
	TypeBool    ColumnType = "bool"
	TypeString  ColumnType = "string"
)

// Payload is an in-memory table: named, typed columns and ordered rows.
// Row cells are keyed by column name; a missing or nil value is a null.
type Payload struct {
	Columns []string
	Types   map[string]ColumnType
	Rows    []map[string]any
}

// RowCount returns the number of data rows.
func (p *Payload) RowCount() int {
	return len(p.Rows)
}
