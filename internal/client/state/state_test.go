package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/client/state"
	"taskboard/internal/models"
)

func newTask(title, status string) models.Task {
	return models.Task{ID: primitive.NewObjectID(), Title: title, Status: status}
}

func newSubTask(title, status string) models.SubTask {
	return models.SubTask{ID: primitive.NewObjectID(), Title: title, Status: status}
}

func taskTitles(list []models.Task) []string {
	titles := make([]string, len(list))
	for i, t := range list {
		titles[i] = t.Title
	}
	return titles
}

func TestPrependTask(t *testing.T) {
	older := newTask("older", models.TaskStatusPending)
	list := []models.Task{older}

	next := state.PrependTask(list, newTask("newest", models.TaskStatusPending))

	assert.Equal(t, []string{"newest", "older"}, taskTitles(next))
	assert.Equal(t, []string{"older"}, taskTitles(list), "input slice must stay untouched")
}

func TestReplaceTask(t *testing.T) {
	task := newTask("before", models.TaskStatusPending)
	list := []models.Task{task}

	updated := task
	updated.Title = "after"
	updated.Status = models.TaskStatusCompleted

	next := state.ReplaceTask(list, updated)
	assert.Equal(t, "after", next[0].Title)
	assert.Equal(t, "before", list[0].Title)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		stranger := newTask("stranger", models.TaskStatusPending)
		assert.Equal(t, next, state.ReplaceTask(next, stranger))
	})
}

func TestRemoveTask(t *testing.T) {
	keep := newTask("keep", models.TaskStatusPending)
	drop := newTask("drop", models.TaskStatusPending)
	list := []models.Task{keep, drop}

	next := state.RemoveTask(list, drop.ID)
	assert.Equal(t, []string{"keep"}, taskTitles(next))
	assert.Len(t, list, 2)
}

// TestOptimisticToggleRollback plays out the toggle flow the dashboard
// uses: apply the status change locally, then put the snapshot back as if
// the server had rejected the update.
func TestOptimisticToggleRollback(t *testing.T) {
	task := newTask("deploy", models.TaskStatusPending)
	snapshot := []models.Task{task}

	optimistic := state.SetTaskStatus(snapshot, task.ID, models.TaskStatusCompleted)
	require.Equal(t, models.TaskStatusCompleted, optimistic[0].Status)

	assert.Equal(t, models.TaskStatusPending, snapshot[0].Status,
		"the snapshot is the rollback, it must survive the optimistic step")
}

func TestSubTaskList(t *testing.T) {
	first := newSubTask("first", models.SubTaskStatusTodo)
	list := state.AppendSubTask(nil, first)
	list = state.AppendSubTask(list, newSubTask("second", models.SubTaskStatusTodo))

	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Title, "sub-tasks keep their oldest-first order")

	moved := first
	moved.Status = models.SubTaskStatusReview
	list = state.ReplaceSubTask(list, moved)
	assert.Equal(t, models.SubTaskStatusReview, list[0].Status)

	list = state.RemoveSubTask(list, first.ID)
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Title)
}

func TestPartitionSubTasks(t *testing.T) {
	board := state.PartitionSubTasks([]models.SubTask{
		newSubTask("a", models.SubTaskStatusTodo),
		newSubTask("b", models.SubTaskStatusDone),
		newSubTask("c", models.SubTaskStatusTodo),
	})

	require.Len(t, board, len(models.SubTaskStatuses))
	for _, status := range models.SubTaskStatuses {
		require.Contains(t, board, status, "every column exists even when empty")
	}

	assert.Len(t, board[models.SubTaskStatusTodo], 2)
	assert.Len(t, board[models.SubTaskStatusDone], 1)
	assert.Empty(t, board[models.SubTaskStatusInProgress])
	assert.Empty(t, board[models.SubTaskStatusReview])
}

func TestPartitionSubTasks_Empty(t *testing.T) {
	board := state.PartitionSubTasks(nil)
	for _, status := range models.SubTaskStatuses {
		assert.NotNil(t, board[status])
		assert.Empty(t, board[status])
	}
}
