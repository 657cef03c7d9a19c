package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
)

// NewAssignCommand creates the assign command, linking tasks to
// projects. Terms resolving to multiple rows assign the full
// cross-product of matches.
func NewAssignCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <task-term> <project-term>",
		Short: "Assign tasks to projects",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			pairs, err := resolvePairs(cmd, app, args[0], args[1])
			if err != nil {
				return err
			}

			if len(pairs) == 1 {
				if err := app.srv.Assign(cmd.Context(), pairs[0].TaskID, pairs[0].ProjectID); err != nil {
					return WrapExitError(ExitCommandError, "assign task", err)
				}
			} else {
				if err := app.srv.BatchAssign(cmd.Context(), pairs); err != nil {
					return WrapExitError(ExitCommandError, "assign tasks", err)
				}
			}

			return app.out.Success(
				fmt.Sprintf("Assigned %d pair(s)", len(pairs)),
				map[string]any{"assigned": len(pairs)},
			)
		},
	}
}

// NewUnassignCommand creates the unassign command, removing task-project
// links.
func NewUnassignCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <task-term> <project-term>",
		Short: "Unassign tasks from projects",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			pairs, err := resolvePairs(cmd, app, args[0], args[1])
			if err != nil {
				return err
			}

			var n int64
			if len(pairs) == 1 {
				n, err = app.srv.Unassign(cmd.Context(), pairs[0].TaskID, pairs[0].ProjectID)
			} else {
				n, err = app.srv.BatchUnassign(cmd.Context(), pairs)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "unassign task", err)
			}
			if n == 0 {
				return NewExitError(ExitFailure, "no matching assignment")
			}

			return app.out.Success(
				fmt.Sprintf("Removed %d assignment(s)", n),
				map[string]any{"removed": n},
			)
		},
	}
}

// resolvePairs expands the two terms into every (task, project) id pair
// they match.
func resolvePairs(cmd *cobra.Command, app *appContext, taskTerm, projectTerm string) ([]model.Assignment, error) {
	tasks, err := app.srv.SelectTasks(cmd.Context(), querysql.SelectTasks{
		Cols:  queryir.Columns("id"),
		Where: termPredicate(taskTerm),
		Limit: queryir.AllRows(),
	})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "resolve task", err)
	}
	if len(tasks) == 0 {
		return nil, NewExitError(ExitFailure, "no matching task")
	}

	projects, err := app.srv.SelectProjects(cmd.Context(), querysql.SelectProjects{
		Cols:  queryir.Columns("id"),
		Where: termPredicate(projectTerm),
		Limit: queryir.AllRows(),
	})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "resolve project", err)
	}
	if len(projects) == 0 {
		return nil, NewExitError(ExitFailure, "no matching project")
	}

	var pairs []model.Assignment
	for _, t := range tasks {
		for _, p := range projects {
			if t.ID == nil || p.ID == nil {
				continue
			}
			pairs = append(pairs, model.Assignment{TaskID: *t.ID, ProjectID: *p.ID})
		}
	}
	return pairs, nil
}
