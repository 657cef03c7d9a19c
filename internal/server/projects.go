package server

import (
	"context"

	"golang.org/x/text/unicode/norm"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
)

// AddProject inserts one project row and returns the store-generated id.
func (s *Server) AddProject(ctx context.Context, args querysql.AddProject) (int64, error) {
	args.Name = norm.NFC.String(args.Name)
	return s.execInsert(ctx, "add project", args.Command())
}

// UpdateProjects updates every project row matching where and returns
// the affected count. A nil where updates every row. Changes with zero
// non-untouched actions are rejected as misuse.
func (s *Server) UpdateProjects(ctx context.Context, changes querysql.ProjectChanges, where queryir.Predicate) (int64, error) {
	if len(changes.Assignments()) == 0 {
		return 0, misuseError("update projects", "no columns to update")
	}
	if v, ok := changes.Name.Value(); ok {
		changes.Name = queryir.Set(norm.NFC.String(v))
	}
	return s.execAffecting(ctx, "update projects", querysql.UpdateProjects(changes, where))
}

// DeleteProjects deletes every project row matching where and returns
// the affected count. A nil where empties the whole table and cascades
// to the join rows.
func (s *Server) DeleteProjects(ctx context.Context, where queryir.Predicate) (int64, error) {
	return s.execAffecting(ctx, "delete projects", querysql.DeleteProjects(where))
}

// SelectProjects returns the projects matching the query, with only the
// projected fields populated.
func (s *Server) SelectProjects(ctx context.Context, q querysql.SelectProjects) ([]model.Project, error) {
	rows, err := s.query(ctx, "select projects", q.Command())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

// ProjectTasks loads the tasks assigned to a project, via the join
// table. Used to populate Project.Tasks lazily.
func (s *Server) ProjectTasks(ctx context.Context, projectID int64) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.priority, t.status, t.start_time, t.end_time, t.repeat, t.notes
		FROM tasks t
		JOIN task_assignments ta ON ta.task_id = t.id
		WHERE ta.project_id = ?
		ORDER BY t.priority DESC;
	`, projectID)
	if err != nil {
		return nil, statementError("select project tasks", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}
