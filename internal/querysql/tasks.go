package querysql

import (
	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/queryir"
)

// AddTask builds the insertion for one new task row. Only columns with
// present values are named; the store fills the rest with NULL.
type AddTask struct {
	Name      string
	Priority  int64
	Status    model.Status
	StartTime *string
	EndTime   *string
	Repeat    *string
	Notes     *string
}

// Command reduces the builder to its canonical insert form.
func (a AddTask) Command() Insert {
	cols := []string{"name", "priority", "status"}
	vals := []any{a.Name, a.Priority, a.Status.Code()}

	cols, vals = appendPresent(cols, vals, "start_time", a.StartTime)
	cols, vals = appendPresent(cols, vals, "end_time", a.EndTime)
	cols, vals = appendPresent(cols, vals, "repeat", a.Repeat)
	cols, vals = appendPresent(cols, vals, "notes", a.Notes)

	return Insert{Table: queryir.Tasks, Columns: cols, Values: vals}
}

// TaskChanges holds one tri-state update action per updatable task
// column. The zero value of every field is Untouched, so a literal
// TaskChanges{Status: queryir.Set(model.StatusComplete)} touches exactly
// one column.
type TaskChanges struct {
	Name      queryir.UpdateAction[string]
	Priority  queryir.UpdateAction[int64]
	Status    queryir.UpdateAction[model.Status]
	StartTime queryir.UpdateAction[string]
	EndTime   queryir.UpdateAction[string]
	Repeat    queryir.UpdateAction[string]
	Notes     queryir.UpdateAction[string]
}

// Assignments filters out every Untouched action and returns the
// column-assignment list. An empty result means the caller asked to
// update nothing; the facade rejects that before a statement is built.
func (c TaskChanges) Assignments() []Assignment {
	var out []Assignment
	out = appendAction(out, "name", c.Name)
	out = appendAction(out, "priority", c.Priority)
	if v, ok := c.Status.Value(); ok {
		out = append(out, Assignment{Column: "status", Value: v.Code()})
	} else if c.Status.IsNull() {
		out = append(out, Assignment{Column: "status"})
	}
	out = appendAction(out, "start_time", c.StartTime)
	out = appendAction(out, "end_time", c.EndTime)
	out = appendAction(out, "repeat", c.Repeat)
	out = appendAction(out, "notes", c.Notes)
	return out
}

// UpdateTasks builds an update scoped by where. A nil where updates
// every task row.
func UpdateTasks(changes TaskChanges, where queryir.Predicate) Update {
	return Update{
		Table:       queryir.Tasks,
		Assignments: changes.Assignments(),
		Where:       where,
	}
}

// DeleteTasks builds a deletion scoped by where. A nil where deletes
// every task row; task_assignments rows referencing a deleted id go with
// it via the cascade.
func DeleteTasks(where queryir.Predicate) Delete {
	return Delete{Table: queryir.Tasks, Where: where}
}

// SelectTasks builds a read of the tasks table. Zero values resolve to
// the task defaults: ordered by priority descending, capped at
// queryir.DefaultRowCap rows.
type SelectTasks struct {
	Cols     queryir.Projection
	Where    queryir.Predicate
	OrderBy  queryir.OrderBy
	OrderDir queryir.OrderDir
	Limit    queryir.RowLimit
	Offset   int
}

// Command reduces the builder to its canonical select form.
func (q SelectTasks) Command() Select {
	return Select{
		Table:        queryir.Tasks,
		Cols:         q.Cols,
		Where:        q.Where,
		OrderBy:      q.OrderBy,
		OrderDir:     q.OrderDir,
		Limit:        q.Limit,
		Offset:       q.Offset,
		defaultOrder: queryir.OrderByPriority,
	}
}

// appendPresent appends a column/value pair only when the value is
// present.
func appendPresent(cols []string, vals []any, col string, v *string) ([]string, []any) {
	if v == nil {
		return cols, vals
	}
	return append(cols, col), append(vals, *v)
}

// appendAction appends the assignment for a non-Untouched action.
func appendAction[T any](out []Assignment, col string, a queryir.UpdateAction[T]) []Assignment {
	if v, ok := a.Value(); ok {
		return append(out, Assignment{Column: col, Value: v})
	}
	if a.IsNull() {
		return append(out, Assignment{Column: col})
	}
	return out
}
