package api

import (
	"context"
	"net/http"

	"taskboard/internal/models"
)

type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// TaskPatch carries only the fields to change; nil fields are left out of
// the request body entirely.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type TaskDetail struct {
	Task     models.Task      `json:"task"`
	SubTasks []models.SubTask `json:"subTasks"`
}

type deletedPayload struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, input TaskInput) (*models.Task, error) {
	task := new(models.Task)
	err := c.do(ctx, http.MethodPost, "/api/tasks", input, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (c *Client) TaskDetail(ctx context.Context, taskID string) (*TaskDetail, error) {
	detail := new(TaskDetail)
	err := c.do(ctx, http.MethodGet, "/api/tasks/"+taskID, nil, detail)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (c *Client) UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (*models.Task, error) {
	task := new(models.Task)
	err := c.do(ctx, http.MethodPut, "/api/tasks/"+taskID, patch, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task and returns the deleted id echoed by the
// server so the caller can reconcile its local list.
func (c *Client) DeleteTask(ctx context.Context, taskID string) (string, error) {
	payload := new(deletedPayload)
	err := c.do(ctx, http.MethodDelete, "/api/tasks/"+taskID, nil, payload)
	if err != nil {
		return "", err
	}
	return payload.ID, nil
}
