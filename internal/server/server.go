// Package server is the facade over the storage engine. It owns the
// single SQLite connection, executes the statements the querysql package
// renders, and maps result rows back into model entities.
//
// Every operation is a synchronous call that blocks until the store
// replies. There is no internal concurrency, no retry, and no statement
// cache; statements execute individually except schema initialization,
// which runs inside one transaction.
package server

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
)

//go:embed schema.sql
var schemaSQL string

// Server owns the single connection to the storage engine.
type Server struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at the given path, creating
// the file if it does not exist. Foreign key enforcement and a busy
// timeout are applied to the connection; the schema itself is created by
// Init.
func Open(path string) (*Server, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, connectionError("open database", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, connectionError("connect to database", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY from our own pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, connectionError(fmt.Sprintf("apply %q", pragma), err)
		}
	}

	return &Server{db: db}, nil
}

// Init creates the three application tables if they do not exist. The
// whole schema runs inside one transaction, so a half-initialized
// database is never left behind. Idempotent - safe to call on every
// start.
func (s *Server) Init(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return connectionError("init schema: begin tx", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return connectionError("init schema", err)
	}

	if err := tx.Commit(); err != nil {
		return connectionError("init schema: commit", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Server) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RowCount returns the total number of rows in the given table. The
// display layer uses it for pagination footers.
func (s *Server) RowCount(ctx context.Context, table queryir.Table) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s;", table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, statementError(fmt.Sprintf("count rows in %s", table), err)
	}
	return count, nil
}

// execInsert compiles and executes an insert command, returning the
// store-generated row id.
func (s *Server) execInsert(ctx context.Context, op string, cmd querysql.Insert) (int64, error) {
	query, params, err := querysql.Compile(cmd)
	if err != nil {
		return 0, statementError(op, err)
	}

	res, err := s.db.ExecContext(ctx, query, params...)
	if err != nil {
		return 0, statementError(op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, statementError(op, err)
	}
	return id, nil
}

// execAffecting compiles and executes an update or delete command,
// returning the number of rows the store reports as affected.
func (s *Server) execAffecting(ctx context.Context, op string, cmd querysql.Command) (int64, error) {
	query, params, err := querysql.Compile(cmd)
	if err != nil {
		return 0, statementError(op, err)
	}

	res, err := s.db.ExecContext(ctx, query, params...)
	if err != nil {
		return 0, statementError(op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, statementError(op, err)
	}
	return affected, nil
}

// query compiles and executes a select command. Callers are responsible
// for closing the returned rows.
func (s *Server) query(ctx context.Context, op string, cmd querysql.Command) (*sql.Rows, error) {
	query, params, err := querysql.Compile(cmd)
	if err != nil {
		return nil, statementError(op, err)
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, statementError(op, err)
	}
	return rows, nil
}
