package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/services"
)

type createSubTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (h *handlerImpl) HandleCreateSubTask(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	parentID, ok := objectIDParam(c, "taskId", "Invalid Task ID format")
	if !ok {
		return
	}

	var req createSubTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind create sub-task request")
		abort(c, newBadRequestError("Sub-task title is required"))
		return
	}

	subTask, err := h.subTasks.Create(c, user.ID, parentID, services.CreateSubTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to create sub-task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError("Parent task not found"))
		case errors.Is(err, services.ErrNotOwner):
			abort(c, newForbiddenError("Not authorized to add sub-tasks to this task"))
		case errors.Is(err, services.ErrTitleRequired):
			abort(c, newBadRequestError("Sub-task title is required"))
		case errors.Is(err, services.ErrInvalidStatus):
			abort(c, newBadRequestError("Invalid sub-task status"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, subTask)
}

func (h *handlerImpl) HandleGetSubTasks(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	parentID, ok := objectIDParam(c, "taskId", "Invalid Task ID format")
	if !ok {
		return
	}

	subTasks, err := h.subTasks.ListByParent(c, parentID, user.ID)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to fetch sub-tasks")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError("Parent task not found"))
		case errors.Is(err, services.ErrNotOwner):
			abort(c, newForbiddenError("Not authorized to view these sub-tasks"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, subTasks)
}

type updateSubTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (h *handlerImpl) HandleUpdateSubTask(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	parentID, ok := objectIDParam(c, "taskId", "Invalid Task ID format")
	if !ok {
		return
	}

	subTaskID, ok := objectIDParam(c, "subTaskId", "Invalid Sub-task ID format")
	if !ok {
		return
	}

	var req updateSubTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind update sub-task request")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	subTask, err := h.subTasks.Update(c, subTaskID, parentID, user.ID, services.UpdateSubTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to update sub-task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError("Parent task not found"))
		case errors.Is(err, services.ErrNotOwner):
			abort(c, newForbiddenError("Not authorized to update this sub-task"))
		case errors.Is(err, services.ErrSubTaskNotFound):
			abort(c, newNotFoundError("Sub-task not found"))
		case errors.Is(err, services.ErrEmptyPatch):
			abort(c, newBadRequestError("No update fields provided for sub-task"))
		case errors.Is(err, services.ErrTitleRequired):
			abort(c, newBadRequestError("Sub-task title is required"))
		case errors.Is(err, services.ErrInvalidStatus):
			abort(c, newBadRequestError("Invalid sub-task status"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, subTask)
}

func (h *handlerImpl) HandleDeleteSubTask(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	parentID, ok := objectIDParam(c, "taskId", "Invalid Task ID format")
	if !ok {
		return
	}

	subTaskID, ok := objectIDParam(c, "subTaskId", "Invalid Sub-task ID format")
	if !ok {
		return
	}

	err := h.subTasks.Delete(c, subTaskID, parentID, user.ID)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to delete sub-task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError("Parent task not found"))
		case errors.Is(err, services.ErrNotOwner):
			abort(c, newForbiddenError("Not authorized to delete this sub-task"))
		case errors.Is(err, services.ErrSubTaskNotFound):
			abort(c, newNotFoundError("Sub-task not found"))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sub-task deleted successfully",
		"id":      subTaskID.Hex(),
	})
}
