package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"taskboard/internal/config"
	v1 "taskboard/internal/delivery/http/v1"
	"taskboard/internal/services"
	"taskboard/internal/storage/mongodb"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	jwtCfg := config.Global().JWT

	users := mongodb.NewUserRepository(globalMongoDatabase)
	tasks := mongodb.NewTaskRepository(globalMongoDatabase)
	subTasks := mongodb.NewSubTaskRepository(globalMongoDatabase)

	handler := v1.New(
		globalLogger,
		services.NewAuthService(
			globalLogger,
			users,
			jwtCfg.Issuer,
			[]byte(jwtCfg.SigningKey),
			jwtCfg.TokenTTL,
		),
		services.NewTaskService(globalLogger, tasks, subTasks),
		services.NewSubTaskService(globalLogger, tasks, subTasks),
	)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Task Manager API is running")
	})

	api := router.Group("/api")

	authRouter := api.Group("/auth")
	authRouter.POST("/register", handler.HandleRegister)
	authRouter.POST("/login", handler.HandleLogin)

	taskRouter := api.Group("/tasks", handler.HandleAuthMiddleware)
	taskRouter.GET("", handler.HandleGetTasks)
	taskRouter.POST("", handler.HandleCreateTask)
	taskRouter.GET("/:taskId", handler.HandleGetTask)
	taskRouter.PUT("/:taskId", handler.HandleUpdateTask)
	taskRouter.DELETE("/:taskId", handler.HandleDeleteTask)

	subTaskRouter := taskRouter.Group("/:taskId/subtasks")
	subTaskRouter.POST("", handler.HandleCreateSubTask)
	subTaskRouter.GET("", handler.HandleGetSubTasks)
	subTaskRouter.PUT("/:subTaskId", handler.HandleUpdateSubTask)
	subTaskRouter.DELETE("/:subTaskId", handler.HandleDeleteSubTask)
}
