package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
	"github.com/toadoapp/toado/internal/server"
)

// nullWord is the flag value that clears a nullable column instead of
// setting it.
const nullWord = "none"

// NewUpdateCommand creates the update command with its task and project
// subcommands.
func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update tasks or projects",
	}
	cmd.AddCommand(newUpdateTaskCommand(opts))
	cmd.AddCommand(newUpdateProjectCommand(opts))
	return cmd
}

func newUpdateTaskCommand(opts *RootOptions) *cobra.Command {
	var (
		name      string
		priority  int64
		status    string
		startTime string
		endTime   string
		repeat    string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "task <term>",
		Short: "Update tasks matching the term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes := querysql.TaskChanges{}

			if cmd.Flags().Changed("name") {
				changes.Name = queryir.Set(name)
			}
			if cmd.Flags().Changed("priority") {
				changes.Priority = queryir.Set(priority)
			}
			if cmd.Flags().Changed("status") {
				st, err := parseStatus(status)
				if err != nil {
					return WrapExitError(ExitCommandError, "parse status", err)
				}
				changes.Status = queryir.Set(st)
			}
			changes.StartTime = nullableAction(cmd, "start", startTime)
			changes.EndTime = nullableAction(cmd, "end", endTime)
			changes.Repeat = nullableAction(cmd, "repeat", repeat)
			changes.Notes = nullableAction(cmd, "notes", notes)

			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			n, err := app.srv.UpdateTasks(cmd.Context(), changes, termPredicate(args[0]))
			if err != nil {
				if server.IsMisuse(err) {
					return NewExitError(ExitCommandError, "nothing to update: pass at least one field flag")
				}
				return WrapExitError(ExitCommandError, "update task", err)
			}
			if n == 0 {
				return NewExitError(ExitFailure, "no matching task")
			}

			return app.out.Success(
				fmt.Sprintf("Updated %d task(s)", n),
				map[string]any{"updated": n},
			)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().Int64VarP(&priority, "priority", "p", 0, "new priority")
	cmd.Flags().StringVar(&status, "status", "", "new status (incomplete|complete|archived)")
	cmd.Flags().StringVar(&startTime, "start", "", "new start time ("+nullWord+" clears)")
	cmd.Flags().StringVar(&endTime, "end", "", "new end time ("+nullWord+" clears)")
	cmd.Flags().StringVar(&repeat, "repeat", "", "new repeat rule ("+nullWord+" clears)")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes ("+nullWord+" clears)")

	return cmd
}

func newUpdateProjectCommand(opts *RootOptions) *cobra.Command {
	var (
		name      string
		startTime string
		endTime   string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "project <term>",
		Short: "Update projects matching the term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes := querysql.ProjectChanges{}

			if cmd.Flags().Changed("name") {
				changes.Name = queryir.Set(name)
			}
			changes.StartTime = nullableAction(cmd, "start", startTime)
			changes.EndTime = nullableAction(cmd, "end", endTime)
			changes.Notes = nullableAction(cmd, "notes", notes)

			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			n, err := app.srv.UpdateProjects(cmd.Context(), changes, termPredicate(args[0]))
			if err != nil {
				if server.IsMisuse(err) {
					return NewExitError(ExitCommandError, "nothing to update: pass at least one field flag")
				}
				return WrapExitError(ExitCommandError, "update project", err)
			}
			if n == 0 {
				return NewExitError(ExitFailure, "no matching project")
			}

			return app.out.Success(
				fmt.Sprintf("Updated %d project(s)", n),
				map[string]any{"updated": n},
			)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&startTime, "start", "", "new start time ("+nullWord+" clears)")
	cmd.Flags().StringVar(&endTime, "end", "", "new end time ("+nullWord+" clears)")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes ("+nullWord+" clears)")

	return cmd
}

// nullableAction maps a string flag to a tri-state action: untouched
// when the flag was not passed, null when its value is the null word,
// set otherwise.
func nullableAction(cmd *cobra.Command, flag, value string) queryir.UpdateAction[string] {
	if !cmd.Flags().Changed(flag) {
		return queryir.Untouched[string]()
	}
	if value == nullWord {
		return queryir.Null[string]()
	}
	return queryir.Set(value)
}

func parseStatus(s string) (model.Status, error) {
	switch s {
	case "incomplete":
		return model.StatusIncomplete, nil
	case "complete":
		return model.StatusComplete, nil
	case "archived":
		return model.StatusArchived, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}
