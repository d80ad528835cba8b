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

type subTaskServiceImpl struct {
	logger   zerolog.Logger
	tasks    storage.TaskRepository
	subTasks storage.SubTaskRepository
}

func NewSubTaskService(
	logger zerolog.Logger,
	tasks storage.TaskRepository,
	subTasks storage.SubTaskRepository,
) SubTaskService {
	return &subTaskServiceImpl{
		logger:   logger,
		tasks:    tasks,
		subTasks: subTasks,
	}
}

func (s *subTaskServiceImpl) Create(ctx context.Context, owner, parent primitive.ObjectID, params CreateSubTaskParams) (*models.SubTask, error) {
	err := s.resolveParent(ctx, parent, owner)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	status := params.Status
	if status == "" {
		status = models.SubTaskStatusTodo
	}
	if !models.ValidSubTaskStatus(status) {
		s.logger.Warn().
			Str("status", status).
			Msg("invalid sub-task status")
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	subTask := models.SubTask{
		Owner:       owner,
		Parent:      parent,
		Title:       title,
		Description: params.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.subTasks.Insert(ctx, &subTask)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert sub-task")
		return nil, err
	}

	s.logger.Info().
		Str("subtask_id", subTask.ID.Hex()).
		Str("task_id", parent.Hex()).
		Msg("created sub-task")
	return &subTask, nil
}

func (s *subTaskServiceImpl) ListByParent(ctx context.Context, parent, owner primitive.ObjectID) ([]models.SubTask, error) {
	err := s.resolveParent(ctx, parent, owner)
	if err != nil {
		return nil, err
	}

	subTasks, err := s.subTasks.FindByParent(ctx, parent, owner)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select sub-tasks")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(subTasks)).
		Str("task_id", parent.Hex()).
		Msg("selected sub-tasks")
	return subTasks, nil
}

func (s *subTaskServiceImpl) Update(ctx context.Context, id, parent, owner primitive.ObjectID, patch UpdateSubTaskParams) (*models.SubTask, error) {
	err := s.resolveParent(ctx, parent, owner)
	if err != nil {
		return nil, err
	}

	subTask, err := s.findOne(ctx, id, parent, owner)
	if err != nil {
		return nil, err
	}

	// The sub-task must exist before the patch itself is judged.
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		subTask.Title = title
	}
	if patch.Description != nil {
		subTask.Description = *patch.Description
	}
	if patch.Status != nil {
		if !models.ValidSubTaskStatus(*patch.Status) {
			s.logger.Warn().
				Str("status", *patch.Status).
				Msg("invalid sub-task status")
			return nil, ErrInvalidStatus
		}
		subTask.Status = *patch.Status
	}
	subTask.UpdatedAt = time.Now()

	err = s.subTasks.Update(ctx, subTask)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to update sub-task")
		return nil, err
	}

	s.logger.Info().
		Str("subtask_id", subTask.ID.Hex()).
		Msg("updated sub-task")
	return subTask, nil
}

func (s *subTaskServiceImpl) Delete(ctx context.Context, id, parent, owner primitive.ObjectID) error {
	err := s.resolveParent(ctx, parent, owner)
	if err != nil {
		return err
	}

	subTask, err := s.findOne(ctx, id, parent, owner)
	if err != nil {
		return err
	}

	err = s.subTasks.Delete(ctx, subTask.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to delete sub-task")
		return err
	}

	s.logger.Info().
		Str("subtask_id", subTask.ID.Hex()).
		Msg("deleted sub-task")
	return nil
}

func (s *subTaskServiceImpl) resolveParent(ctx context.Context, parent, owner primitive.ObjectID) error {
	task, err := s.tasks.FindByID(ctx, parent)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("task_id", parent.Hex()).
				Msg("parent task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to select parent task")
		return err
	}

	if task.Owner != owner {
		s.logger.Warn().
			Str("task_id", parent.Hex()).
			Str("user_id", owner.Hex()).
			Msg("parent task owned by another user")
		return ErrNotOwner
	}
	return nil
}

func (s *subTaskServiceImpl) findOne(ctx context.Context, id, parent, owner primitive.ObjectID) (*models.SubTask, error) {
	subTask, err := s.subTasks.FindOne(ctx, id, parent, owner)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("subtask_id", id.Hex()).
				Msg("sub-task not found")
			return nil, ErrSubTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to select sub-task")
		return nil, err
	}
	return subTask, nil
}
