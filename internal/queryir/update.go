package queryir

type actionKind int

const (
	actionUntouched actionKind = iota
	actionSet
	actionNull
)

// UpdateAction is a tri-state instruction for one updatable column:
//
//   - Set(v): write "column = v"
//   - Null(): write "column = NULL", explicitly clearing the column
//   - the zero value: leave the column out of the statement entirely
//
// The three cases are distinct on purpose. Clearing a column is not the
// same as not mentioning it, so the type is a three-case sum rather than a
// nested optional or a sentinel value.
type UpdateAction[T any] struct {
	kind  actionKind
	value T
}

// Set writes the value to the column.
func Set[T any](v T) UpdateAction[T] {
	return UpdateAction[T]{kind: actionSet, value: v}
}

// Null clears the column to NULL.
func Null[T any]() UpdateAction[T] {
	return UpdateAction[T]{kind: actionNull}
}

// Untouched leaves the column out of the statement. Equivalent to the
// zero value; provided for call sites that spell all three cases out.
func Untouched[T any]() UpdateAction[T] {
	return UpdateAction[T]{}
}

// IsUntouched reports whether the column is omitted from the statement.
func (a UpdateAction[T]) IsUntouched() bool {
	return a.kind == actionUntouched
}

// IsNull reports whether the column is cleared to NULL.
func (a UpdateAction[T]) IsNull() bool {
	return a.kind == actionNull
}

// Value returns the value to write and whether one is present. It is
// false for both Null and Untouched.
func (a UpdateAction[T]) Value() (T, bool) {
	return a.value, a.kind == actionSet
}
