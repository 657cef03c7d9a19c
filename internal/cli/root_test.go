package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toadoapp/toado/internal/queryir"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "toado", cmd.Use)
	assert.Contains(t, cmd.Long, "SQLite")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"add", "delete", "update", "check", "search", "ls", "assign", "unassign"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	fileFlag := cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
}

func TestInvalidFormatRejected(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"ls", "--format", "xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestTermPredicate(t *testing.T) {
	assert.Equal(t, queryir.Equal{Col: "id", Value: int64(42)}, termPredicate("42"))
	assert.Equal(t, queryir.Equal{Col: "name", Value: "laundry"}, termPredicate("laundry"))
}

func TestSearchPredicate(t *testing.T) {
	assert.Equal(t, queryir.Equal{Col: "id", Value: int64(7)}, searchPredicate("7"))
	assert.Equal(t, queryir.Like{Col: "name", Pattern: "%gard%"}, searchPredicate("gard"))
}

func TestExitError(t *testing.T) {
	err := NewExitError(ExitCommandError, "bad flags")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "bad flags", err.Error())

	wrapped := WrapExitError(ExitFailure, "no match", assert.AnError)
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.ErrorIs(t, wrapped, assert.AnError)

	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}

// execute runs the full command tree against a scratch database and
// returns stdout.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	dbPath := filepath.Join(dir, "test.db")
	cfgPath := filepath.Join(dir, "config.toml")
	writeTestConfig(t, cfgPath, dbPath)

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "add", "task", "pack bag", "--priority", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "pack bag")

	out, err = execute(t, dir, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "pack bag")
	assert.Contains(t, out, "of 1")
}

func TestCheckMarksComplete(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "add", "task", "laundry")
	require.NoError(t, err)

	out, err := execute(t, dir, "check", "laundry")
	require.NoError(t, err)
	assert.Contains(t, out, "1 task(s) complete")
}

func TestDeleteRequiresTermOrAll(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "delete", "task")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestUpdateWithoutFlagsRejected(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "add", "task", "laundry")
	require.NoError(t, err)

	_, err = execute(t, dir, "update", "task", "laundry")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestAssignAndUnassign(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "add", "task", "water plants")
	require.NoError(t, err)
	_, err = execute(t, dir, "add", "project", "garden")
	require.NoError(t, err)

	out, err := execute(t, dir, "assign", "water plants", "garden")
	require.NoError(t, err)
	assert.Contains(t, out, "Assigned 1 pair(s)")

	out, err = execute(t, dir, "unassign", "water plants", "garden")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 assignment(s)")
}

func TestSearchSingleMatchShowsDetail(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "add", "task", "water plants")
	require.NoError(t, err)
	_, err = execute(t, dir, "add", "project", "garden")
	require.NoError(t, err)
	_, err = execute(t, dir, "assign", "water plants", "garden")
	require.NoError(t, err)

	out, err := execute(t, dir, "search", "task", "water")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: water plants")
	assert.Contains(t, out, "Projects: garden")
}

func TestSearchNoMatchFails(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "search", "task", "nothing here")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func writeTestConfig(t *testing.T, cfgPath, dbPath string) {
	t.Helper()
	contents := fmt.Sprintf("[database]\npath = %q\n", dbPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0o644))
}
