// Package querysql renders typed commands to parameterized SQL for
// SQLite.
//
// Each operation kind per entity has a builder (AddTask, UpdateTasks,
// SelectProjects, ...) that reduces its configuration to one of four
// canonical command forms below. Compile emits the final statement text
// from the canonical form, so there is exactly one place where SQL text
// is assembled.
//
// All values are bound via ? placeholders, never interpolated into the
// statement text.
package querysql

import "github.com/toadoapp/toado/internal/queryir"

// Command is a canonical statement form ready for compilation.
//
// This is a sealed interface - only the four command types in this
// package implement it.
type Command interface {
	commandNode() // Marker method - seals interface to this package
}

// Insert is the canonical form of an add operation: one row, naming only
// the columns with present values.
type Insert struct {
	Table   queryir.Table
	Columns []string
	Values  []any
}

func (Insert) commandNode() {}

// Assignment is one "column = value" pair of an update statement. A nil
// Value writes NULL; the tri-state filtering that distinguishes NULL from
// untouched happens in the builders, before an Assignment exists.
type Assignment struct {
	Column string
	Value  any
}

// Update is the canonical form of an update operation. A nil Where
// updates every row of the table.
//
// An empty assignment list compiles to malformed SQL. The facade rejects
// that case before building the command; Compile does not guard it.
type Update struct {
	Table       queryir.Table
	Assignments []Assignment
	Where       queryir.Predicate
}

func (Update) commandNode() {}

// Delete is the canonical form of a delete operation. A nil Where deletes
// every row of the table - an explicit, dangerous default that callers
// must opt into deliberately.
type Delete struct {
	Table queryir.Table
	Where queryir.Predicate
}

func (Delete) commandNode() {}

// Select is the canonical form of a read operation with fully resolvable
// ordering and pagination.
type Select struct {
	Table    queryir.Table
	Cols     queryir.Projection
	Where    queryir.Predicate
	OrderBy  queryir.OrderBy
	OrderDir queryir.OrderDir
	Limit    queryir.RowLimit
	Offset   int

	// defaultOrder is the per-entity sort column used when OrderBy is
	// left at its zero value. Set by the entity builders.
	defaultOrder queryir.OrderBy
}

func (Select) commandNode() {}
