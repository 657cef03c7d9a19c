package cli

import (
	"github.com/spf13/cobra"

	"github.com/toadoapp/toado/internal/format"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
)

// NewSearchCommand creates the search command with its task and project
// subcommands. Searches are uncapped: every match is shown.
func NewSearchCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search tasks or projects",
	}
	cmd.AddCommand(newSearchTaskCommand(opts))
	cmd.AddCommand(newSearchProjectCommand(opts))
	return cmd
}

func newSearchTaskCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "task <term>",
		Short: "Search tasks by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			tasks, err := app.srv.SelectTasks(cmd.Context(), querysql.SelectTasks{
				Where: searchPredicate(args[0]),
				Limit: queryir.AllRows(),
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "search tasks", err)
			}
			if len(tasks) == 0 {
				return NewExitError(ExitFailure, "no matching task")
			}

			// A single hit gets the detail view, associations included.
			if len(tasks) == 1 && tasks[0].ID != nil {
				projects, err := app.srv.TaskProjects(cmd.Context(), *tasks[0].ID)
				if err != nil {
					return WrapExitError(ExitCommandError, "load task projects", err)
				}
				tasks[0].Projects = projects
				return app.out.Success(format.TaskDetail(tasks[0]), tasks[0])
			}

			return app.out.Success(format.TaskTable(tasks, app.cfg.Table, true), tasks)
		},
	}
}

func newSearchProjectCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "project <term>",
		Short: "Search projects by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			projects, err := app.srv.SelectProjects(cmd.Context(), querysql.SelectProjects{
				Where: searchPredicate(args[0]),
				Limit: queryir.AllRows(),
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "search projects", err)
			}
			if len(projects) == 0 {
				return NewExitError(ExitFailure, "no matching project")
			}

			if len(projects) == 1 && projects[0].ID != nil {
				tasks, err := app.srv.ProjectTasks(cmd.Context(), *projects[0].ID)
				if err != nil {
					return WrapExitError(ExitCommandError, "load project tasks", err)
				}
				projects[0].Tasks = tasks
				return app.out.Success(format.ProjectDetail(projects[0]), projects[0])
			}

			return app.out.Success(format.ProjectTable(projects, app.cfg.Table, true), projects)
		},
	}
}
