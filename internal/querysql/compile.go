package querysql

import (
	"fmt"
	"strings"

	"github.com/toadoapp/toado/internal/queryir"
)

// Compile converts a canonical command to parameterized SQL.
// Returns (sql, params, error).
//
// Values are never interpolated - always bound via ? placeholders. Only
// structural text (table and column names from the closed Table set and
// builder-held column lists, order and pagination clauses) is formatted
// into the statement.
func Compile(cmd Command) (string, []any, error) {
	switch c := cmd.(type) {
	case Insert:
		return compileInsert(c)
	case *Insert:
		return compileInsert(*c)
	case Update:
		return compileUpdate(c)
	case *Update:
		return compileUpdate(*c)
	case Delete:
		return compileDelete(c)
	case *Delete:
		return compileDelete(*c)
	case Select:
		return compileSelect(c)
	case *Select:
		return compileSelect(*c)
	default:
		return "", nil, fmt.Errorf("unsupported command type: %T", cmd)
	}
}

func compileInsert(c Insert) (string, []any, error) {
	if len(c.Columns) == 0 {
		return "", nil, fmt.Errorf("insert into %s: no columns", c.Table)
	}
	if len(c.Columns) != len(c.Values) {
		return "", nil, fmt.Errorf("insert into %s: %d columns, %d values",
			c.Table, len(c.Columns), len(c.Values))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(c.Values)), ", ")
	sql := fmt.Sprintf("INSERT INTO %s(%s) VALUES(%s);",
		c.Table, strings.Join(c.Columns, ", "), placeholders)

	return sql, c.Values, nil
}

func compileUpdate(c Update) (string, []any, error) {
	var assigns []string
	var params []any
	for _, a := range c.Assignments {
		if a.Value == nil {
			assigns = append(assigns, a.Column+" = NULL")
			continue
		}
		assigns = append(assigns, a.Column+" = ?")
		params = append(params, a.Value)
	}

	sql := fmt.Sprintf("UPDATE %s SET %s", c.Table, strings.Join(assigns, ", "))

	whereSQL, whereParams, err := compileWhere(c.Where)
	if err != nil {
		return "", nil, fmt.Errorf("update %s: %w", c.Table, err)
	}
	sql += whereSQL
	params = append(params, whereParams...)

	return sql + ";", params, nil
}

func compileDelete(c Delete) (string, []any, error) {
	sql := fmt.Sprintf("DELETE FROM %s", c.Table)

	whereSQL, params, err := compileWhere(c.Where)
	if err != nil {
		return "", nil, fmt.Errorf("delete from %s: %w", c.Table, err)
	}

	return sql + whereSQL + ";", params, nil
}

func compileSelect(c Select) (string, []any, error) {
	cols := "*"
	if !c.Cols.All() {
		cols = strings.Join(c.Cols.Names(), ", ")
	}

	sql := fmt.Sprintf("SELECT %s FROM %s", cols, c.Table)

	whereSQL, params, err := compileWhere(c.Where)
	if err != nil {
		return "", nil, fmt.Errorf("select from %s: %w", c.Table, err)
	}
	sql += whereSQL

	// Resolve ordering: caller value if present, else the per-entity
	// default column; direction defaults to DESC for priority (highest
	// first) and ASC for everything else.
	by := c.OrderBy
	if by == queryir.OrderByDefault {
		by = c.defaultOrder
	}
	dir := c.OrderDir
	if dir == queryir.DirDefault {
		if by == queryir.OrderByPriority {
			dir = queryir.Desc
		} else {
			dir = queryir.Asc
		}
	}
	sql += fmt.Sprintf(" ORDER BY %s %s", by.Column(), dir)

	// AllRows disables the cap, and with it the offset: showing every
	// row makes an offset meaningless.
	if !c.Limit.IsAll() {
		sql += fmt.Sprintf(" LIMIT %d", c.Limit.Cap())
		if c.Offset > 0 {
			sql += fmt.Sprintf(" OFFSET %d", c.Offset)
		}
	}

	return sql + ";", params, nil
}

// compileWhere renders an optional predicate as a WHERE clause. A nil
// predicate renders nothing, which scopes the statement to every row.
func compileWhere(p queryir.Predicate) (string, []any, error) {
	if p == nil {
		return "", nil, nil
	}
	sql, params, err := compilePredicate(p)
	if err != nil {
		return "", nil, err
	}
	return " WHERE " + sql, params, nil
}

// compilePredicate compiles a predicate to a WHERE clause fragment.
// Values are always bound via ? placeholders.
func compilePredicate(p queryir.Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case queryir.Equal:
		return pred.Col + " = ?", []any{pred.Value}, nil
	case *queryir.Equal:
		return pred.Col + " = ?", []any{pred.Value}, nil
	case queryir.NotEqual:
		return pred.Col + " != ?", []any{pred.Value}, nil
	case *queryir.NotEqual:
		return pred.Col + " != ?", []any{pred.Value}, nil
	case queryir.GreaterThan:
		return pred.Col + " > ?", []any{pred.Value}, nil
	case *queryir.GreaterThan:
		return pred.Col + " > ?", []any{pred.Value}, nil
	case queryir.LessThan:
		return pred.Col + " < ?", []any{pred.Value}, nil
	case *queryir.LessThan:
		return pred.Col + " < ?", []any{pred.Value}, nil
	case queryir.GreaterOrEqual:
		return pred.Col + " >= ?", []any{pred.Value}, nil
	case *queryir.GreaterOrEqual:
		return pred.Col + " >= ?", []any{pred.Value}, nil
	case queryir.LessOrEqual:
		return pred.Col + " <= ?", []any{pred.Value}, nil
	case *queryir.LessOrEqual:
		return pred.Col + " <= ?", []any{pred.Value}, nil
	case queryir.Between:
		return pred.Col + " BETWEEN ? AND ?", []any{pred.Low, pred.High}, nil
	case *queryir.Between:
		return pred.Col + " BETWEEN ? AND ?", []any{pred.Low, pred.High}, nil
	case queryir.Like:
		return pred.Col + " LIKE ?", []any{pred.Pattern}, nil
	case *queryir.Like:
		return pred.Col + " LIKE ?", []any{pred.Pattern}, nil
	case queryir.In:
		return compileIn(pred)
	case *queryir.In:
		return compileIn(*pred)
	case queryir.And:
		return compileConnective(pred.Predicates, " AND ")
	case *queryir.And:
		return compileConnective(pred.Predicates, " AND ")
	case queryir.Or:
		return compileConnective(pred.Predicates, " OR ")
	case *queryir.Or:
		return compileConnective(pred.Predicates, " OR ")
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileIn(in queryir.In) (string, []any, error) {
	if len(in.Values) == 0 {
		return "", nil, fmt.Errorf("IN predicate on %s: no values", in.Col)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(in.Values)), ", ")
	return fmt.Sprintf("%s IN (%s)", in.Col, placeholders), in.Values, nil
}

// compileConnective joins child fragments flatly. No parentheses are
// emitted, so nesting And inside Or (or the reverse) does not group; the
// store applies its own precedence to the flattened text.
func compileConnective(preds []queryir.Predicate, joiner string) (string, []any, error) {
	if len(preds) == 0 {
		return "1 = 1", nil, nil // Always true (vacuous truth)
	}

	var parts []string
	var params []any
	for _, p := range preds {
		sql, ps, err := compilePredicate(p)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		params = append(params, ps...)
	}

	return strings.Join(parts, joiner), params, nil
}
