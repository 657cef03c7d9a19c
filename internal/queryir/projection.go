package queryir

// Projection selects either every column or an explicit, ordered subset
// of column names for a select statement.
//
// Column names are not validated against the schema here; a misspelled
// name surfaces as a statement error when the store rejects the rendered
// text.
type Projection struct {
	cols []string
}

// AllColumns selects every column of the table.
func AllColumns() Projection {
	return Projection{}
}

// Columns selects the named columns, in order.
func Columns(cols ...string) Projection {
	return Projection{cols: cols}
}

// All reports whether the projection covers every column.
func (p Projection) All() bool {
	return len(p.cols) == 0
}

// Names returns the projected column names. Empty means all columns.
func (p Projection) Names() []string {
	return p.cols
}
