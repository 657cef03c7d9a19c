package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/queryir"
)

func TestAssign_RejectsUnknownIDs(t *testing.T) {
	s := createTestServer(t)

	err := s.Assign(context.Background(), 1, 1)
	require.Error(t, err, "foreign keys must reference existing rows")
	assert.True(t, IsStatement(err))
}

func TestAssign_DuplicatePairsAccumulate(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	taskID := addTestTask(t, s, "recurring", 1)
	projectID := addTestProject(t, s, "home")

	require.NoError(t, s.Assign(ctx, taskID, projectID))
	require.NoError(t, s.Assign(ctx, taskID, projectID))

	count, err := s.RowCount(ctx, queryir.TaskAssignments)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "the pair has no uniqueness constraint")
}

func TestUnassign_RemovesEveryMatchingRow(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	taskID := addTestTask(t, s, "recurring", 1)
	projectID := addTestProject(t, s, "home")
	require.NoError(t, s.Assign(ctx, taskID, projectID))
	require.NoError(t, s.Assign(ctx, taskID, projectID))

	n, err := s.Unassign(ctx, taskID, projectID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := s.RowCount(ctx, queryir.TaskAssignments)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUnassign_NoMatchReturnsZero(t *testing.T) {
	s := createTestServer(t)

	n, err := s.Unassign(context.Background(), 5, 7)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBatchAssign(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	t1 := addTestTask(t, s, "one", 1)
	t2 := addTestTask(t, s, "two", 2)
	projectID := addTestProject(t, s, "home")

	err := s.BatchAssign(ctx, []model.Assignment{
		{TaskID: t1, ProjectID: projectID},
		{TaskID: t2, ProjectID: projectID},
	})
	require.NoError(t, err)

	count, err := s.RowCount(ctx, queryir.TaskAssignments)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestBatchAssign_StopsAtFirstFailure(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	taskID := addTestTask(t, s, "one", 1)
	projectID := addTestProject(t, s, "home")

	err := s.BatchAssign(ctx, []model.Assignment{
		{TaskID: taskID, ProjectID: projectID},
		{TaskID: 999, ProjectID: projectID}, // no such task
		{TaskID: taskID, ProjectID: projectID},
	})
	require.Error(t, err)

	count, err := s.RowCount(ctx, queryir.TaskAssignments)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "pairs after the failure are not applied")
}

func TestBatchUnassign_ReturnsTotalAffected(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	t1 := addTestTask(t, s, "one", 1)
	t2 := addTestTask(t, s, "two", 2)
	projectID := addTestProject(t, s, "home")
	require.NoError(t, s.Assign(ctx, t1, projectID))
	require.NoError(t, s.Assign(ctx, t2, projectID))

	n, err := s.BatchUnassign(ctx, []model.Assignment{
		{TaskID: t1, ProjectID: projectID},
		{TaskID: t2, ProjectID: projectID},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
