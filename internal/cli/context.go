package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/toadoapp/toado/internal/config"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/server"
)

// appContext bundles what every command needs after setup: the open
// server, the loaded configuration and the output formatter.
type appContext struct {
	srv *server.Server
	cfg config.Config
	out *OutputFormatter
}

func (a *appContext) Close() error {
	return a.srv.Close()
}

// setup loads the configuration, resolves the database path and opens
// the store. Precedence for the path: --file flag, then the config
// file's database.path, then the default data directory.
func setup(cmd *cobra.Command, opts *RootOptions) (*appContext, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	path := opts.File
	if path == "" {
		path = cfg.Database.Path
	}
	if path == "" {
		path, err = config.DefaultDataPath()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "resolve data path", err)
		}
	}

	srv, err := server.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open database", err)
	}
	if err := srv.Init(cmd.Context()); err != nil {
		srv.Close()
		return nil, WrapExitError(ExitCommandError, "initialize database", err)
	}

	return &appContext{
		srv: srv,
		cfg: cfg,
		out: &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		},
	}, nil
}

// termPredicate resolves a positional term to a row condition: a number
// selects by id, anything else by exact name.
func termPredicate(term string) queryir.Predicate {
	if id, err := strconv.ParseInt(term, 10, 64); err == nil {
		return queryir.Equal{Col: "id", Value: id}
	}
	return queryir.Equal{Col: "name", Value: term}
}

// searchPredicate resolves a search term: a number selects by id,
// anything else matches names containing the term.
func searchPredicate(term string) queryir.Predicate {
	if id, err := strconv.ParseInt(term, 10, 64); err == nil {
		return queryir.Equal{Col: "id", Value: id}
	}
	return queryir.Like{Col: "name", Pattern: "%" + term + "%"}
}

// optString returns nil for the empty string, a pointer otherwise. Used
// to turn unset string flags into absent columns.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
