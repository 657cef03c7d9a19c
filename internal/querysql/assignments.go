package querysql

import "github.com/toadoapp/toado/internal/queryir"

// AddAssignment builds the insertion of one task/project join row.
//
// No uniqueness is enforced: inserting the same pair twice yields two
// identical join rows. Documented current behavior, not corrected here.
type AddAssignment struct {
	TaskID    int64
	ProjectID int64
}

// Command reduces the builder to its canonical insert form.
func (a AddAssignment) Command() Insert {
	return Insert{
		Table:   queryir.TaskAssignments,
		Columns: []string{"task_id", "project_id"},
		Values:  []any{a.TaskID, a.ProjectID},
	}
}

// DeleteAssignments builds a deletion of join rows scoped by where. A
// nil where clears the whole join table.
func DeleteAssignments(where queryir.Predicate) Delete {
	return Delete{Table: queryir.TaskAssignments, Where: where}
}

// UnassignWhere matches join rows linking exactly the given task and
// project.
func UnassignWhere(taskID, projectID int64) queryir.Predicate {
	return queryir.And{Predicates: []queryir.Predicate{
		queryir.Equal{Col: "task_id", Value: taskID},
		queryir.Equal{Col: "project_id", Value: projectID},
	}}
}
