package queryir

// Predicate represents a typed comparison over one column, used to scope
// update, delete and select statements.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the querysql compiler.
//
// Combination is explicit: And and Or join their children flatly with no
// parenthesization and no precedence handling. Mixing more than two
// predicates across both connectives can therefore mis-associate; callers
// needing grouping must restructure the condition. This is a known
// limitation, not corrected silently.
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// Equal renders "col = ?".
type Equal struct {
	Col   string
	Value any
}

func (Equal) predicateNode() {}

// NotEqual renders "col != ?".
type NotEqual struct {
	Col   string
	Value any
}

func (NotEqual) predicateNode() {}

// GreaterThan renders "col > ?".
type GreaterThan struct {
	Col   string
	Value any
}

func (GreaterThan) predicateNode() {}

// LessThan renders "col < ?".
type LessThan struct {
	Col   string
	Value any
}

func (LessThan) predicateNode() {}

// GreaterOrEqual renders "col >= ?".
type GreaterOrEqual struct {
	Col   string
	Value any
}

func (GreaterOrEqual) predicateNode() {}

// LessOrEqual renders "col <= ?".
type LessOrEqual struct {
	Col   string
	Value any
}

func (LessOrEqual) predicateNode() {}

// Between renders "col BETWEEN ? AND ?" with the low bound first.
type Between struct {
	Col  string
	Low  any
	High any
}

func (Between) predicateNode() {}

// Like renders "col LIKE ?". The pattern is bound as a parameter, so SQL
// wildcards (%, _) belong in the pattern itself.
type Like struct {
	Col     string
	Pattern string
}

func (Like) predicateNode() {}

// In renders "col IN (?, ?, ...)" with one placeholder per value.
type In struct {
	Col    string
	Values []any
}

func (In) predicateNode() {}

// And joins its children with " AND ", flat and unparenthesized. An empty
// child list renders as always-true.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Or joins its children with " OR ", flat and unparenthesized. An empty
// child list renders as always-true.
type Or struct {
	Predicates []Predicate
}

func (Or) predicateNode() {}
