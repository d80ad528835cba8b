// Package state holds the pure transition functions behind the client's
// dashboard list and kanban board. Every function returns a fresh slice
// and never mutates its input, so an optimistic update is just "keep the
// old slice, show the new one, and put the old one back if the server
// call fails".
package state

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/models"
)

// PrependTask puts a freshly created task at the head of the list, which
// keeps the newest-first order the server uses.
func PrependTask(list []models.Task, task models.Task) []models.Task {
	next := make([]models.Task, 0, len(list)+1)
	next = append(next, task)
	return append(next, list...)
}

// ReplaceTask swaps the task with the same id. An unknown id leaves the
// list unchanged.
func ReplaceTask(list []models.Task, task models.Task) []models.Task {
	next := make([]models.Task, len(list))
	copy(next, list)
	for i := range next {
		if next[i].ID == task.ID {
			next[i] = task
		}
	}
	return next
}

func RemoveTask(list []models.Task, id primitive.ObjectID) []models.Task {
	next := make([]models.Task, 0, len(list))
	for _, t := range list {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return next
}

// SetTaskStatus is the optimistic half of a status toggle: it returns the
// list with the task's status already changed. The caller holds on to the
// previous slice as the rollback snapshot.
func SetTaskStatus(list []models.Task, id primitive.ObjectID, status string) []models.Task {
	next := make([]models.Task, len(list))
	copy(next, list)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
		}
	}
	return next
}

func AppendSubTask(list []models.SubTask, subTask models.SubTask) []models.SubTask {
	next := make([]models.SubTask, 0, len(list)+1)
	next = append(next, list...)
	return append(next, subTask)
}

func ReplaceSubTask(list []models.SubTask, subTask models.SubTask) []models.SubTask {
	next := make([]models.SubTask, len(list))
	copy(next, list)
	for i := range next {
		if next[i].ID == subTask.ID {
			next[i] = subTask
		}
	}
	return next
}

func RemoveSubTask(list []models.SubTask, id primitive.ObjectID) []models.SubTask {
	next := make([]models.SubTask, 0, len(list))
	for _, st := range list {
		if st.ID != id {
			next = append(next, st)
		}
	}
	return next
}

// SetSubTaskStatus moves a card to another column optimistically, same
// contract as SetTaskStatus.
func SetSubTaskStatus(list []models.SubTask, id primitive.ObjectID, status string) []models.SubTask {
	next := make([]models.SubTask, len(list))
	copy(next, list)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
		}
	}
	return next
}

// Board groups sub-tasks by status. Every kanban column is present in the
// map even when empty.
type Board map[string][]models.SubTask

func PartitionSubTasks(subTasks []models.SubTask) Board {
	board := make(Board, len(models.SubTaskStatuses))
	for _, status := range models.SubTaskStatuses {
		board[status] = []models.SubTask{}
	}
	for _, st := range subTasks {
		board[st.Status] = append(board[st.Status], st)
	}
	return board
}
