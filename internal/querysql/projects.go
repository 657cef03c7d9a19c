package querysql

import "github.com/toadoapp/toado/internal/queryir"

// AddProject builds the insertion for one new project row.
type AddProject struct {
	Name      string
	StartTime *string
	EndTime   *string
	Notes     *string
}

// Command reduces the builder to its canonical insert form.
func (a AddProject) Command() Insert {
	cols := []string{"name"}
	vals := []any{a.Name}

	cols, vals = appendPresent(cols, vals, "start_time", a.StartTime)
	cols, vals = appendPresent(cols, vals, "end_time", a.EndTime)
	cols, vals = appendPresent(cols, vals, "notes", a.Notes)

	return Insert{Table: queryir.Projects, Columns: cols, Values: vals}
}

// ProjectChanges holds one tri-state update action per updatable project
// column. Zero value fields are Untouched.
type ProjectChanges struct {
	Name      queryir.UpdateAction[string]
	StartTime queryir.UpdateAction[string]
	EndTime   queryir.UpdateAction[string]
	Notes     queryir.UpdateAction[string]
}

// Assignments filters out every Untouched action and returns the
// column-assignment list.
func (c ProjectChanges) Assignments() []Assignment {
	var out []Assignment
	out = appendAction(out, "name", c.Name)
	out = appendAction(out, "start_time", c.StartTime)
	out = appendAction(out, "end_time", c.EndTime)
	out = appendAction(out, "notes", c.Notes)
	return out
}

// UpdateProjects builds an update scoped by where. A nil where updates
// every project row.
func UpdateProjects(changes ProjectChanges, where queryir.Predicate) Update {
	return Update{
		Table:       queryir.Projects,
		Assignments: changes.Assignments(),
		Where:       where,
	}
}

// DeleteProjects builds a deletion scoped by where. A nil where deletes
// every project row and cascades to their task_assignments rows.
func DeleteProjects(where queryir.Predicate) Delete {
	return Delete{Table: queryir.Projects, Where: where}
}

// SelectProjects builds a read of the projects table. Zero values
// resolve to the project defaults: ordered by name ascending, capped at
// queryir.DefaultRowCap rows.
type SelectProjects struct {
	Cols     queryir.Projection
	Where    queryir.Predicate
	OrderBy  queryir.OrderBy
	OrderDir queryir.OrderDir
	Limit    queryir.RowLimit
	Offset   int
}

// Command reduces the builder to its canonical select form.
func (q SelectProjects) Command() Select {
	return Select{
		Table:        queryir.Projects,
		Cols:         q.Cols,
		Where:        q.Where,
		OrderBy:      q.OrderBy,
		OrderDir:     q.OrderDir,
		Limit:        q.Limit,
		Offset:       q.Offset,
		defaultOrder: queryir.OrderByName,
	}
}
