package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

type taskServiceImpl struct {
	logger   zerolog.Logger
	tasks    storage.TaskRepository
	subTasks storage.SubTaskRepository
}

func NewTaskService(
	logger zerolog.Logger,
	tasks storage.TaskRepository,
	subTasks storage.SubTaskRepository,
) TaskService {
	return &taskServiceImpl{
		logger:   logger,
		tasks:    tasks,
		subTasks: subTasks,
	}
}

func (s *taskServiceImpl) Create(ctx context.Context, owner primitive.ObjectID, params CreateTaskParams) (*models.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	status := params.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	if !models.ValidTaskStatus(status) {
		s.logger.Warn().
			Str("status", status).
			Msg("invalid task status")
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	task := models.Task{
		Owner:       owner,
		Title:       title,
		Description: params.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tasks.Insert(ctx, &task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID.Hex()).
		Str("user_id", owner.Hex()).
		Msg("created task")
	return &task, nil
}

func (s *taskServiceImpl) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Task, error) {
	tasks, err := s.tasks.FindByOwner(ctx, owner)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", owner.Hex()).
		Msg("selected tasks")
	return tasks, nil
}

func (s *taskServiceImpl) GetWithSubTasks(ctx context.Context, id, owner primitive.ObjectID) (*models.Task, []models.SubTask, error) {
	task, err := s.resolveOwned(ctx, id, owner)
	if err != nil {
		return nil, nil, err
	}

	subTasks, err := s.subTasks.FindByParent(ctx, task.ID, owner)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select sub-tasks")
		return nil, nil, err
	}
	return task, subTasks, nil
}

func (s *taskServiceImpl) Update(ctx context.Context, id, owner primitive.ObjectID, patch UpdateTaskParams) (*models.Task, error) {
	task, err := s.resolveOwned(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	// Ownership errors take precedence over validation of the patch itself.
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !models.ValidTaskStatus(*patch.Status) {
			s.logger.Warn().
				Str("status", *patch.Status).
				Msg("invalid task status")
			return nil, ErrInvalidStatus
		}
		task.Status = *patch.Status
	}
	task.UpdatedAt = time.Now()

	err = s.tasks.Update(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID.Hex()).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	task, err := s.resolveOwned(ctx, id, owner)
	if err != nil {
		return err
	}

	// Sub-tasks are intentionally not cascade-deleted.
	err = s.tasks.Delete(ctx, task.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to delete task")
		return err
	}

	s.logger.Info().
		Str("task_id", task.ID.Hex()).
		Msg("deleted task")
	return nil
}

// resolveOwned loads the task and checks ownership after the load, so the
// caller can tell a missing record from someone else's record.
func (s *taskServiceImpl) resolveOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("task_id", id.Hex()).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to select task")
		return nil, err
	}

	if task.Owner != owner {
		s.logger.Warn().
			Str("task_id", id.Hex()).
			Str("user_id", owner.Hex()).
			Msg("task owned by another user")
		return nil, ErrNotOwner
	}
	return task, nil
}
