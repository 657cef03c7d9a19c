package server

import (
	"context"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/querysql"
)

// Assign inserts one join row linking the task to the project. The
// foreign keys must reference existing rows or the store rejects the
// statement.
//
// Assigning the same pair twice produces two identical join rows; no
// uniqueness constraint exists on the pair.
func (s *Server) Assign(ctx context.Context, taskID, projectID int64) error {
	cmd := querysql.AddAssignment{TaskID: taskID, ProjectID: projectID}.Command()
	_, err := s.execInsert(ctx, "assign task", cmd)
	return err
}

// Unassign deletes every join row matching both identifiers exactly and
// returns the affected count.
func (s *Server) Unassign(ctx context.Context, taskID, projectID int64) (int64, error) {
	cmd := querysql.DeleteAssignments(querysql.UnassignWhere(taskID, projectID))
	return s.execAffecting(ctx, "unassign task", cmd)
}

// BatchAssign applies Assign once per pair, stopping at the first
// failure.
func (s *Server) BatchAssign(ctx context.Context, pairs []model.Assignment) error {
	for _, p := range pairs {
		if err := s.Assign(ctx, p.TaskID, p.ProjectID); err != nil {
			return err
		}
	}
	return nil
}

// BatchUnassign applies Unassign once per pair, stopping at the first
// failure. Returns the total affected count across pairs.
func (s *Server) BatchUnassign(ctx context.Context, pairs []model.Assignment) (int64, error) {
	var total int64
	for _, p := range pairs {
		n, err := s.Unassign(ctx, p.TaskID, p.ProjectID)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
