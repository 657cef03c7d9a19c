package server

import (
	"context"

	"golang.org/x/text/unicode/norm"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
)

// AddTask inserts one task row and returns the store-generated id. The
// name is normalized to NFC before storage so lookups by name are not
// sensitive to the input method's choice of composition.
func (s *Server) AddTask(ctx context.Context, args querysql.AddTask) (int64, error) {
	args.Name = norm.NFC.String(args.Name)
	return s.execInsert(ctx, "add task", args.Command())
}

// UpdateTasks updates every task row matching where and returns the
// affected count. A nil where updates every row.
//
// Changes with zero non-untouched actions are rejected as misuse before
// any statement is built: the rendered SQL would have an empty
// assignment list.
func (s *Server) UpdateTasks(ctx context.Context, changes querysql.TaskChanges, where queryir.Predicate) (int64, error) {
	if len(changes.Assignments()) == 0 {
		return 0, misuseError("update tasks", "no columns to update")
	}
	if v, ok := changes.Name.Value(); ok {
		changes.Name = queryir.Set(norm.NFC.String(v))
	}
	return s.execAffecting(ctx, "update tasks", querysql.UpdateTasks(changes, where))
}

// DeleteTasks deletes every task row matching where and returns the
// affected count. A nil where empties the whole table; the cascade
// removes every task_assignments row referencing a deleted id.
func (s *Server) DeleteTasks(ctx context.Context, where queryir.Predicate) (int64, error) {
	return s.execAffecting(ctx, "delete tasks", querysql.DeleteTasks(where))
}

// SelectTasks returns the tasks matching the query, with only the
// projected fields populated.
func (s *Server) SelectTasks(ctx context.Context, q querysql.SelectTasks) ([]model.Task, error) {
	rows, err := s.query(ctx, "select tasks", q.Command())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

// TaskProjects loads the projects a task is assigned to, via the join
// table. Used to populate Task.Projects lazily.
func (s *Server) TaskProjects(ctx context.Context, taskID int64) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.start_time, p.end_time, p.notes
		FROM projects p
		JOIN task_assignments ta ON ta.project_id = p.id
		WHERE ta.task_id = ?
		ORDER BY p.name ASC;
	`, taskID)
	if err != nil {
		return nil, statementError("select task projects", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}
