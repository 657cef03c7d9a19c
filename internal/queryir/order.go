package queryir

// DefaultRowCap is the row cap applied when a select names neither an
// explicit limit nor AllRows.
const DefaultRowCap = 10

// OrderBy names the column a select is sorted on. The zero value defers
// to the per-entity default: priority for tasks, name for projects.
type OrderBy int

const (
	OrderByDefault OrderBy = iota
	OrderByID
	OrderByName
	OrderByPriority
)

// Column returns the column name used in the ORDER BY clause.
func (o OrderBy) Column() string {
	switch o {
	case OrderByID:
		return "id"
	case OrderByName:
		return "name"
	case OrderByPriority:
		return "priority"
	default:
		return ""
	}
}

// OrderDir is the sort direction. The zero value defers to the
// column-dependent default: descending for priority (highest first),
// ascending for every other column.
type OrderDir int

const (
	DirDefault OrderDir = iota
	Asc
	Desc
)

func (d OrderDir) String() string {
	switch d {
	case Asc:
		return "ASC"
	case Desc:
		return "DESC"
	default:
		return ""
	}
}

// RowLimit caps the number of rows a select returns.
//
// The zero value applies DefaultRowCap. Limit(n) caps at n. AllRows
// removes the cap entirely, and because showing everything makes an
// offset meaningless, any offset supplied alongside AllRows is ignored
// by the compiler.
type RowLimit struct {
	n        int
	explicit bool
	all      bool
}

// Limit caps the selection at n rows.
func Limit(n int) RowLimit {
	return RowLimit{n: n, explicit: true}
}

// AllRows removes the row cap.
func AllRows() RowLimit {
	return RowLimit{all: true}
}

// IsAll reports whether the cap is disabled.
func (l RowLimit) IsAll() bool {
	return l.all
}

// Cap returns the resolved row cap: the explicit value if one was given,
// DefaultRowCap otherwise. Meaningless when IsAll is true.
func (l RowLimit) Cap() int {
	if l.explicit {
		return l.n
	}
	return DefaultRowCap
}
