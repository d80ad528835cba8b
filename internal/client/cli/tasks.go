package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"taskboard/internal/client/api"
	"taskboard/internal/client/state"
	"taskboard/internal/models"
)

func (a *App) List(ctx context.Context) {
	tasks, err := a.api.Tasks(ctx)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to fetch tasks: %v", err))
		return
	}

	a.tasks = tasks
	a.renderTasks()
}

func (a *App) Add(ctx context.Context, title string) {
	if strings.TrimSpace(title) == "" {
		printlnFn("Usage: add <title>")
		return
	}

	task, err := a.api.CreateTask(ctx, api.TaskInput{Title: title})
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to create task: %v", err))
		return
	}

	a.tasks = state.PrependTask(a.tasks, *task)
	a.renderTasks()
}

// Toggle changes a task's status optimistically: the list is redrawn with
// the new status before the server round trip, and restored from the
// snapshot if the call fails.
func (a *App) Toggle(ctx context.Context, args []string) {
	if len(args) != 2 || !models.ValidTaskStatus(args[1]) {
		printlnFn("Usage: toggle <n> <pending|in-progress|completed>")
		return
	}

	task, ok := a.taskAt(args[0])
	if !ok {
		return
	}
	status := args[1]

	snapshot := a.tasks
	a.tasks = state.SetTaskStatus(a.tasks, task.ID, status)
	a.renderTasks()

	updated, err := a.api.UpdateTask(ctx, task.ID.Hex(), api.TaskPatch{Status: &status})
	if err != nil {
		a.tasks = snapshot
		printlnFn(fmt.Sprintf("Failed to update task, change reverted: %v", err))
		a.renderTasks()
		return
	}
	a.tasks = state.ReplaceTask(a.tasks, *updated)
}

func (a *App) Del(ctx context.Context, args []string) {
	if len(args) != 1 {
		printlnFn("Usage: del <n>")
		return
	}

	task, ok := a.taskAt(args[0])
	if !ok {
		return
	}

	deletedID, err := a.api.DeleteTask(ctx, task.ID.Hex())
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to delete task: %v", err))
		return
	}

	// Reconcile the local list with the echoed id rather than reloading.
	a.tasks = state.RemoveTask(a.tasks, task.ID)
	if a.current != nil && a.current.ID == task.ID {
		a.current = nil
		a.subTasks = nil
	}
	printlnFn(fmt.Sprintf("Deleted task %s", deletedID))
	a.renderTasks()
}

func (a *App) renderTasks() {
	if len(a.tasks) == 0 {
		printlnFn("No tasks yet. Use 'add <title>' to create one.")
		return
	}
	for i, t := range a.tasks {
		printlnFn(fmt.Sprintf("%2d. [%-11s] %s", i+1, t.Status, t.Title))
	}
}

// taskAt resolves a 1-based index from the last rendered list.
func (a *App) taskAt(arg string) (*models.Task, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.tasks) {
		printlnFn("No such task. Run 'list' and use the number shown.")
		return nil, false
	}
	return &a.tasks[n-1], true
}
