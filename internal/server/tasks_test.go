package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toadoapp/toado/internal/model"
	"github.com/toadoapp/toado/internal/queryir"
	"github.com/toadoapp/toado/internal/querysql"
)

func TestAddTask_RoundTrip(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	notes := "bring the charger"
	id, err := s.AddTask(ctx, querysql.AddTask{
		Name:     "pack bag",
		Priority: 5,
		Status:   model.StatusIncomplete,
		Notes:    &notes,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	tasks, err := s.SelectTasks(ctx, querysql.SelectTasks{
		Where: queryir.Equal{Col: "id", Value: id},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	got := tasks[0]
	require.NotNil(t, got.ID)
	assert.Equal(t, id, *got.ID)
	require.NotNil(t, got.Name)
	assert.Equal(t, "pack bag", *got.Name)
	require.NotNil(t, got.Priority)
	assert.Equal(t, int64(5), *got.Priority)
	require.NotNil(t, got.Status)
	assert.Equal(t, model.StatusIncomplete, *got.Status)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "bring the charger", *got.Notes)

	// Columns never inserted come back absent, not zero-valued.
	assert.Nil(t, got.StartTime)
	assert.Nil(t, got.EndTime)
	assert.Nil(t, got.Repeat)
}

func TestSelectTasks_ProjectionLeavesOtherFieldsAbsent(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	addTestTask(t, s, "only name", 3)

	tasks, err := s.SelectTasks(ctx, querysql.SelectTasks{
		Cols: queryir.Columns("name"),
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	require.NotNil(t, tasks[0].Name)
	assert.Equal(t, "only name", *tasks[0].Name)
	assert.Nil(t, tasks[0].ID)
	assert.Nil(t, tasks[0].Priority)
	assert.Nil(t, tasks[0].Status)
}

func TestSelectTasks_DefaultOrderAndCap(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		addTestTask(t, s, fmt.Sprintf("task %02d", i), int64(i))
	}

	tasks, err := s.SelectTasks(ctx, querysql.SelectTasks{})
	require.NoError(t, err)

	// Default cap is ten rows, highest priority first.
	require.Len(t, tasks, 10)
	require.NotNil(t, tasks[0].Priority)
	assert.Equal(t, int64(14), *tasks[0].Priority)
	require.NotNil(t, tasks[9].Priority)
	assert.Equal(t, int64(5), *tasks[9].Priority)
}

func TestSelectTasks_AllRowsDisablesCap(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		addTestTask(t, s, fmt.Sprintf("task %02d", i), int64(i))
	}

	tasks, err := s.SelectTasks(ctx, querysql.SelectTasks{
		Limit:  queryir.AllRows(),
		Offset: 5, // ignored without a cap
	})
	require.NoError(t, err)
	assert.Len(t, tasks, 15)
}

func TestSelectTasks_OffsetUnderCap(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		addTestTask(t, s, fmt.Sprintf("task %02d", i), int64(i))
	}

	tasks, err := s.SelectTasks(ctx, querysql.SelectTasks{
		Limit:  queryir.Limit(5),
		Offset: 10,
	})
	require.NoError(t, err)

	require.Len(t, tasks, 5)
	require.NotNil(t, tasks[0].Priority)
	assert.Equal(t, int64(4), *tasks[0].Priority)
}

func TestSelectTasks_NoMatchesIsEmptyNotError(t *testing.T) {
	s := createTestServer(t)

	tasks, err := s.SelectTasks(context.Background(), querysql.SelectTasks{
		Where: queryir.Equal{Col: "id", Value: int64(999)},
	})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestUpdateTasks_TriState(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	notes := "initial"
	id, err := s.AddTask(ctx, querysql.AddTask{
		Name:     "laundry",
		Priority: 2,
		Status:   model.StatusIncomplete,
		Notes:    &notes,
	})
	require.NoError(t, err)

	n, err := s.UpdateTasks(ctx, querysql.TaskChanges{
		Priority: queryir.Set(int64(8)),
		Notes:    queryir.Null[string](),
		// Name untouched
	}, queryir.Equal{Col: "id", Value: id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	tasks, err := s.SelectTasks(ctx, querysql.SelectTasks{
		Where: queryir.Equal{Col: "id", Value: id},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	got := tasks[0]
	require.NotNil(t, got.Priority)
	assert.Equal(t, int64(8), *got.Priority)
	assert.Nil(t, got.Notes, "Null action clears the column")
	require.NotNil(t, got.Name)
	assert.Equal(t, "laundry", *got.Name, "untouched column keeps its value")
}

func TestUpdateTasks_NothingToUpdateIsMisuse(t *testing.T) {
	s := createTestServer(t)

	_, err := s.UpdateTasks(context.Background(), querysql.TaskChanges{}, nil)
	require.Error(t, err)
	assert.True(t, IsMisuse(err))
}

func TestUpdateTasks_UnscopedUpdatesEveryRow(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	addTestTask(t, s, "a", 1)
	addTestTask(t, s, "b", 2)
	addTestTask(t, s, "c", 3)

	n, err := s.UpdateTasks(ctx, querysql.TaskChanges{
		Status: queryir.Set(model.StatusComplete),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestDeleteTasks_CascadesToAssignments(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	taskID := addTestTask(t, s, "doomed", 1)
	projectID := addTestProject(t, s, "home")
	require.NoError(t, s.Assign(ctx, taskID, projectID))

	n, err := s.DeleteTasks(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	count, err := s.RowCount(ctx, queryir.TaskAssignments)
	require.NoError(t, err)
	assert.Zero(t, count, "join rows referencing a deleted task are removed")
}

func TestDeleteTasks_ZeroMatchesIsNotError(t *testing.T) {
	s := createTestServer(t)

	n, err := s.DeleteTasks(context.Background(), queryir.Equal{Col: "id", Value: int64(42)})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTaskProjects_LoadsAssignedProjects(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	taskID := addTestTask(t, s, "write docs", 1)
	p1 := addTestProject(t, s, "zeta")
	p2 := addTestProject(t, s, "alpha")
	require.NoError(t, s.Assign(ctx, taskID, p1))
	require.NoError(t, s.Assign(ctx, taskID, p2))

	projects, err := s.TaskProjects(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Ordered by name ascending.
	require.NotNil(t, projects[0].Name)
	assert.Equal(t, "alpha", *projects[0].Name)
	require.NotNil(t, projects[1].Name)
	assert.Equal(t, "zeta", *projects[1].Name)
}

func TestAddTask_NormalizesName(t *testing.T) {
	s := createTestServer(t)
	ctx := context.Background()

	// Name spelled with a combining acute accent; stored NFC-composed.
	decomposed := "cafe\u0301"
	id, err := s.AddTask(ctx, querysql.AddTask{Name: decomposed, Status: model.StatusIncomplete})
	require.NoError(t, err)

	tasks, err := s.SelectTasks(ctx, querysql.SelectTasks{
		Where: queryir.Equal{Col: "id", Value: id},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Name)
	assert.Equal(t, "caf\u00e9", *tasks[0].Name)
}
