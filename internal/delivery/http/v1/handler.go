package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"taskboard/internal/services"
)

type Handler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleCreateSubTask(c *gin.Context)
	HandleGetSubTasks(c *gin.Context)
	HandleUpdateSubTask(c *gin.Context)
	HandleDeleteSubTask(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	auth     services.AuthService
	tasks    services.TaskService
	subTasks services.SubTaskService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	taskService services.TaskService,
	subTaskService services.SubTaskService,
) Handler {
	return &handlerImpl{
		logger:   logger,
		auth:     authService,
		tasks:    taskService,
		subTasks: subTaskService,
	}
}
