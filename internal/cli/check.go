package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
)

// NewCheckCommand creates the check command, which marks tasks complete
// (or incomplete again with --incomplete).
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	var incomplete bool

	cmd := &cobra.Command{
		Use:   "check <term>",
		Short: "Mark tasks complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			status := model.StatusComplete
			word := "complete"
			if incomplete {
				status = model.StatusIncomplete
				word = "incomplete"
			}

			changes := querysql.TaskChanges{Status: queryir.Set(status)}
			n, err := app.srv.UpdateTasks(cmd.Context(), changes, termPredicate(args[0]))
			if err != nil {
				return WrapExitError(ExitCommandError, "check task", err)
			}
			if n == 0 {
				return NewExitError(ExitFailure, "no matching task")
			}

			return app.out.Success(
				fmt.Sprintf("Marked %d task(s) %s", n, word),
				map[string]any{"updated": n, "status": word},
			)
		},
	}

	cmd.Flags().BoolVar(&incomplete, "incomplete", false, "mark incomplete instead")
	return cmd
}
