// Package queryir defines the typed primitives that statement builders
// compose: table names, projections, predicates, tri-state update actions,
// and ordering/pagination controls.
//
// The package holds data only. Rendering to SQL text lives in the
// querysql package, which reduces these values to parameterized
// fragments. Keeping the two apart means no value in this package ever
// carries statement text, and no caller can smuggle unescaped input into
// a query.
package queryir
