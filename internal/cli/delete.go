package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command with its task and project
// subcommands.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete tasks or projects",
	}
	cmd.AddCommand(newDeleteEntityCommand(opts, "task", "Delete tasks", deleteTasks))
	cmd.AddCommand(newDeleteEntityCommand(opts, "project", "Delete projects", deleteProjects))
	return cmd
}

type deleteFunc func(*cobra.Command, *appContext, []string, bool) (int64, error)

func newDeleteEntityCommand(opts *RootOptions, noun, short string, del deleteFunc) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   noun + " [term]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return NewExitError(ExitCommandError, "a term or --all is required")
			}

			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			n, err := del(cmd, app, args, all)
			if err != nil {
				return WrapExitError(ExitCommandError, "delete "+noun, err)
			}
			if n == 0 {
				return NewExitError(ExitFailure, "no matching "+noun)
			}

			return app.out.Success(
				fmt.Sprintf("Deleted %d %s(s)", n, noun),
				map[string]any{"deleted": n},
			)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "delete every "+noun)
	return cmd
}

func deleteTasks(cmd *cobra.Command, app *appContext, args []string, all bool) (int64, error) {
	if all {
		return app.srv.DeleteTasks(cmd.Context(), nil)
	}
	return app.srv.DeleteTasks(cmd.Context(), termPredicate(args[0]))
}

func deleteProjects(cmd *cobra.Command, app *appContext, args []string, all bool) (int64, error) {
	if all {
		return app.srv.DeleteProjects(cmd.Context(), nil)
	}
	return app.srv.DeleteProjects(cmd.Context(), termPredicate(args[0]))
}
