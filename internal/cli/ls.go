package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toadoapp/toado/internal/format"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
)

// NewListCommand creates the ls command. Tasks are listed by default,
// projects with --project. Listings are capped at ten rows unless --full
// or an explicit --limit is given; a footer reports the visible slice.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var (
		project bool
		verbose bool
		asc     bool
		desc    bool
		full    bool
		limit   int
		offset  int
		orderBy string
	)

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List tasks or projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asc && desc {
				return NewExitError(ExitCommandError, "--asc and --desc are mutually exclusive")
			}

			by, err := parseOrderBy(orderBy)
			if err != nil {
				return WrapExitError(ExitCommandError, "parse order", err)
			}

			dir := queryir.DirDefault
			if asc {
				dir = queryir.Asc
			}
			if desc {
				dir = queryir.Desc
			}

			rowLimit := queryir.RowLimit{}
			if full {
				rowLimit = queryir.AllRows()
			} else if cmd.Flags().Changed("limit") {
				rowLimit = queryir.Limit(limit)
			}

			app, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			showAll := verbose || app.cfg.List.DefaultVerbose

			if project {
				projects, err := app.srv.SelectProjects(cmd.Context(), querysql.SelectProjects{
					OrderBy:  by,
					OrderDir: dir,
					Limit:    rowLimit,
					Offset:   offset,
				})
				if err != nil {
					return WrapExitError(ExitCommandError, "list projects", err)
				}

				text := format.ProjectTable(projects, app.cfg.Table, showAll)
				if !full {
					total, err := app.srv.RowCount(cmd.Context(), queryir.Projects)
					if err != nil {
						return WrapExitError(ExitCommandError, "count projects", err)
					}
					text += format.ListFooter(offset, len(projects), total)
				}
				return app.out.Success(text, projects)
			}

			tasks, err := app.srv.SelectTasks(cmd.Context(), querysql.SelectTasks{
				OrderBy:  by,
				OrderDir: dir,
				Limit:    rowLimit,
				Offset:   offset,
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "list tasks", err)
			}

			text := format.TaskTable(tasks, app.cfg.Table, showAll)
			if !full {
				total, err := app.srv.RowCount(cmd.Context(), queryir.Tasks)
				if err != nil {
					return WrapExitError(ExitCommandError, "count tasks", err)
				}
				text += format.ListFooter(offset, len(tasks), total)
			}
			return app.out.Success(text, tasks)
		},
	}

	cmd.Flags().BoolVarP(&project, "project", "P", false, "list projects instead of tasks")
	cmd.Flags().BoolVar(&verbose, "long", false, "show all columns")
	cmd.Flags().BoolVar(&asc, "asc", false, "sort ascending")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().BoolVar(&full, "full", false, "show every row, no cap")
	cmd.Flags().IntVarP(&limit, "limit", "l", queryir.DefaultRowCap, "row cap")
	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "rows to skip")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort column (id|name|priority)")

	return cmd
}

func parseOrderBy(s string) (queryir.OrderBy, error) {
	switch s {
	case "":
		return queryir.OrderByDefault, nil
	case "id":
		return queryir.OrderByID, nil
	case "name":
		return queryir.OrderByName, nil
	case "priority":
		return queryir.OrderByPriority, nil
	default:
		return 0, fmt.Errorf("unknown order column %q", s)
	}
}
