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

func (a *App) Open(ctx context.Context, args []string) {
	if len(args) != 1 {
		printlnFn("Usage: open <n>")
		return
	}

	task, ok := a.taskAt(args[0])
	if !ok {
		return
	}

	detail, err := a.api.TaskDetail(ctx, task.ID.Hex())
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to fetch task: %v", err))
		return
	}

	a.current = &detail.Task
	a.subTasks = detail.SubTasks
	a.renderBoard()
}

func (a *App) Board(context.Context) {
	if a.current == nil {
		printlnFn("No task opened. Use 'open <n>' first.")
		return
	}
	a.renderBoard()
}

func (a *App) AddSub(ctx context.Context, title string) {
	if a.current == nil {
		printlnFn("No task opened. Use 'open <n>' first.")
		return
	}
	if strings.TrimSpace(title) == "" {
		printlnFn("Usage: addsub <title>")
		return
	}

	subTask, err := a.api.CreateSubTask(ctx, a.current.ID.Hex(), api.SubTaskInput{Title: title})
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to create sub-task: %v", err))
		return
	}

	a.subTasks = state.AppendSubTask(a.subTasks, *subTask)
	a.renderBoard()
}

// Move drags a card to another column optimistically, restoring the
// snapshot if the server rejects the change.
func (a *App) Move(ctx context.Context, args []string) {
	if a.current == nil {
		printlnFn("No task opened. Use 'open <n>' first.")
		return
	}
	if len(args) != 2 || !models.ValidSubTaskStatus(args[1]) {
		printlnFn("Usage: move <m> <todo|in-progress|review|done>")
		return
	}

	subTask, ok := a.subTaskAt(args[0])
	if !ok {
		return
	}
	status := args[1]

	snapshot := a.subTasks
	a.subTasks = state.SetSubTaskStatus(a.subTasks, subTask.ID, status)
	a.renderBoard()

	updated, err := a.api.UpdateSubTask(ctx, a.current.ID.Hex(), subTask.ID.Hex(), api.SubTaskPatch{Status: &status})
	if err != nil {
		a.subTasks = snapshot
		printlnFn(fmt.Sprintf("Failed to move sub-task, change reverted: %v", err))
		a.renderBoard()
		return
	}
	a.subTasks = state.ReplaceSubTask(a.subTasks, *updated)
}

func (a *App) EditSub(ctx context.Context, args []string) {
	if a.current == nil {
		printlnFn("No task opened. Use 'open <n>' first.")
		return
	}
	if len(args) < 2 {
		printlnFn("Usage: editsub <m> <title>")
		return
	}

	subTask, ok := a.subTaskAt(args[0])
	if !ok {
		return
	}
	title := strings.Join(args[1:], " ")

	updated, err := a.api.UpdateSubTask(ctx, a.current.ID.Hex(), subTask.ID.Hex(), api.SubTaskPatch{Title: &title})
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to update sub-task: %v", err))
		return
	}

	a.subTasks = state.ReplaceSubTask(a.subTasks, *updated)
	a.renderBoard()
}

func (a *App) DelSub(ctx context.Context, args []string) {
	if a.current == nil {
		printlnFn("No task opened. Use 'open <n>' first.")
		return
	}
	if len(args) != 1 {
		printlnFn("Usage: delsub <m>")
		return
	}

	subTask, ok := a.subTaskAt(args[0])
	if !ok {
		return
	}

	_, err := a.api.DeleteSubTask(ctx, a.current.ID.Hex(), subTask.ID.Hex())
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to delete sub-task: %v", err))
		return
	}

	a.subTasks = state.RemoveSubTask(a.subTasks, subTask.ID)
	a.renderBoard()
}

// renderBoard prints the opened task and its sub-tasks partitioned into
// the four fixed kanban columns. Indexes refer to the flat sub-task list
// so they stay stable while a card moves between columns.
func (a *App) renderBoard() {
	printlnFn(fmt.Sprintf("== %s [%s]", a.current.Title, a.current.Status))
	if a.current.Description != "" {
		printlnFn("   " + a.current.Description)
	}

	indexes := make(map[string]int, len(a.subTasks))
	for i, st := range a.subTasks {
		indexes[st.ID.Hex()] = i + 1
	}

	board := state.PartitionSubTasks(a.subTasks)
	for _, column := range models.SubTaskStatuses {
		printlnFn(fmt.Sprintf("-- %s (%d)", column, len(board[column])))
		for _, st := range board[column] {
			printlnFn(fmt.Sprintf("   %2d. %s", indexes[st.ID.Hex()], st.Title))
		}
	}
}

func (a *App) subTaskAt(arg string) (*models.SubTask, bool) {
	m, err := strconv.Atoi(arg)
	if err != nil || m < 1 || m > len(a.subTasks) {
		printlnFn("No such sub-task. Use the number shown on the board.")
		return nil, false
	}
	return &a.subTasks[m-1], true
}
