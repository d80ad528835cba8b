package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/services"
)

type createTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind create task request")
		abort(c, newBadRequestError("Task title is required"))
		return
	}

	task, err := h.tasks.Create(c, user.ID, services.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			abort(c, newBadRequestError("Task title is required"))
		case errors.Is(err, services.ErrInvalidStatus):
			abort(c, newBadRequestError("Invalid task status"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByOwner(c, user.ID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	taskID, ok := objectIDParam(c, "taskId", "Invalid Task ID format")
	if !ok {
		return
	}

	task, subTasks, err := h.tasks.GetWithSubTasks(c, taskID, user.ID)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to fetch task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError("Task not found"))
		case errors.Is(err, services.ErrNotOwner):
			abort(c, newForbiddenError("User not authorized to view this task"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":     task,
		"subTasks": subTasks,
	})
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	taskID, ok := objectIDParam(c, "taskId", "Invalid Task ID format")
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind update task request")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.Update(c, taskID, user.ID, services.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to update task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError("Task not found"))
		case errors.Is(err, services.ErrNotOwner):
			abort(c, newForbiddenError("User not authorized to update this task"))
		case errors.Is(err, services.ErrEmptyPatch):
			abort(c, newBadRequestError("No update fields provided"))
		case errors.Is(err, services.ErrTitleRequired):
			abort(c, newBadRequestError("Task title is required"))
		case errors.Is(err, services.ErrInvalidStatus):
			abort(c, newBadRequestError("Invalid task status"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	taskID, ok := objectIDParam(c, "taskId", "Invalid Task ID format")
	if !ok {
		return
	}

	err := h.tasks.Delete(c, taskID, user.ID)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to delete task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError("Task not found"))
		case errors.Is(err, services.ErrNotOwner):
			abort(c, newForbiddenError("User not authorized to delete this task"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	// The deleted id is echoed so the client can reconcile its list
	// without a reload.
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID.Hex(),
	})
}
