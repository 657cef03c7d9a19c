package server

import (
	"database/sql"

	"github.com/toadoapp/toado/internal/model"
)

// Row mapping is field-by-field and lenient: a column that was not
// projected, or whose value fails to decode, leaves the matching entity
// field absent instead of failing the select. A row that fails to scan
// at all is dropped and iteration continues - documented current
// behavior, revisited in DESIGN.md.

// scanTasks maps every row into a Task, populating only the fields whose
// columns were selected.
func scanTasks(rows *sql.Rows) ([]model.Task, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, &Error{Code: ErrCodeMapping, Op: "read task columns", Err: err}
	}

	var tasks []model.Task
	for rows.Next() {
		holders := makeHolders(cols)
		if err := rows.Scan(holders...); err != nil {
			continue
		}

		var t model.Task
		for i, col := range cols {
			switch col {
			case "id":
				t.ID = int64Field(holders[i])
			case "name":
				t.Name = stringField(holders[i])
			case "priority":
				t.Priority = int64Field(holders[i])
			case "status":
				if code := int64Field(holders[i]); code != nil {
					status := model.StatusFromCode(*code)
					t.Status = &status
				}
			case "start_time":
				t.StartTime = stringField(holders[i])
			case "end_time":
				t.EndTime = stringField(holders[i])
			case "repeat":
				t.Repeat = stringField(holders[i])
			case "notes":
				t.Notes = stringField(holders[i])
			}
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, statementError("iterate tasks", err)
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// scanProjects maps every row into a Project, populating only the fields
// whose columns were selected.
func scanProjects(rows *sql.Rows) ([]model.Project, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, &Error{Code: ErrCodeMapping, Op: "read project columns", Err: err}
	}

	var projects []model.Project
	for rows.Next() {
		holders := makeHolders(cols)
		if err := rows.Scan(holders...); err != nil {
			continue
		}

		var p model.Project
		for i, col := range cols {
			switch col {
			case "id":
				p.ID = int64Field(holders[i])
			case "name":
				p.Name = stringField(holders[i])
			case "start_time":
				p.StartTime = stringField(holders[i])
			case "end_time":
				p.EndTime = stringField(holders[i])
			case "notes":
				p.Notes = stringField(holders[i])
			}
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, statementError("iterate projects", err)
	}

	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}

// intColumns are the schema columns stored as integers; everything else
// scans as text.
var intColumns = map[string]bool{
	"id":         true,
	"priority":   true,
	"status":     true,
	"task_id":    true,
	"project_id": true,
}

func makeHolders(cols []string) []any {
	holders := make([]any, len(cols))
	for i, col := range cols {
		if intColumns[col] {
			holders[i] = new(sql.NullInt64)
		} else {
			holders[i] = new(sql.NullString)
		}
	}
	return holders
}

func int64Field(holder any) *int64 {
	n, ok := holder.(*sql.NullInt64)
	if !ok || !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func stringField(holder any) *string {
	s, ok := holder.(*sql.NullString)
	if !ok || !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
