package api

import (
	"context"
	"net/http"

	"taskboard/internal/models"
)

type SubTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type SubTaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (c *Client) SubTasks(ctx context.Context, taskID string) ([]models.SubTask, error) {
	var subTasks []models.SubTask
	err := c.do(ctx, http.MethodGet, "/api/tasks/"+taskID+"/subtasks", nil, &subTasks)
	if err != nil {
		return nil, err
	}
	return subTasks, nil
}

func (c *Client) CreateSubTask(ctx context.Context, taskID string, input SubTaskInput) (*models.SubTask, error) {
	subTask := new(models.SubTask)
	err := c.do(ctx, http.MethodPost, "/api/tasks/"+taskID+"/subtasks", input, subTask)
	if err != nil {
		return nil, err
	}
	return subTask, nil
}

func (c *Client) UpdateSubTask(ctx context.Context, taskID, subTaskID string, patch SubTaskPatch) (*models.SubTask, error) {
	subTask := new(models.SubTask)
	err := c.do(ctx, http.MethodPut, "/api/tasks/"+taskID+"/subtasks/"+subTaskID, patch, subTask)
	if err != nil {
		return nil, err
	}
	return subTask, nil
}

func (c *Client) DeleteSubTask(ctx context.Context, taskID, subTaskID string) (string, error) {
	payload := new(deletedPayload)
	err := c.do(ctx, http.MethodDelete, "/api/tasks/"+taskID+"/subtasks/"+subTaskID, nil, payload)
	if err != nil {
		return "", err
	}
	return payload.ID, nil
}
