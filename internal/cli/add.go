package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/querysql"
)

// NewAddCommand creates the add command with its task and project
// subcommands.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task or project",
	}
	cmd.AddCommand(newAddTaskCommand(opts))
	cmd.AddCommand(newAddProjectCommand(opts))
	return cmd
}

func newAddTaskCommand(opts *RootOptions) *cobra.Command {
	var (
		priority  int64
		startTime string
		endTime   string
		repeat    string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "task <name>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			id, err := app.srv.AddTask(cmd.Context(), querysql.AddTask{
				Name:      args[0],
				Priority:  priority,
				Status:    model.StatusIncomplete,
				StartTime: optString(startTime),
				EndTime:   optString(endTime),
				Repeat:    optString(repeat),
				Notes:     optString(notes),
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "add task", err)
			}

			return app.out.Success(
				fmt.Sprintf("Added task %q with id %d", args[0], id),
				map[string]any{"id": id, "name": args[0]},
			)
		},
	}

	cmd.Flags().Int64VarP(&priority, "priority", "p", 0, "task priority")
	cmd.Flags().StringVar(&startTime, "start", "", "start time")
	cmd.Flags().StringVar(&endTime, "end", "", "end time")
	cmd.Flags().StringVar(&repeat, "repeat", "", "repeat rule")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")

	return cmd
}

func newAddProjectCommand(opts *RootOptions) *cobra.Command {
	var (
		startTime string
		endTime   string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "project <name>",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			id, err := app.srv.AddProject(cmd.Context(), querysql.AddProject{
				Name:      args[0],
				StartTime: optString(startTime),
				EndTime:   optString(endTime),
				Notes:     optString(notes),
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "add project", err)
			}

			return app.out.Success(
				fmt.Sprintf("Added project %q with id %d", args[0], id),
				map[string]any{"id": id, "name": args[0]},
			)
		},
	}

	cmd.Flags().StringVar(&startTime, "start", "", "start time")
	cmd.Flags().StringVar(&endTime, "end", "", "end time")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")

	return cmd
}
