package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	v1 "taskboard/internal/delivery/http/v1"
	"taskboard/internal/services"
	"taskboard/internal/storage/memory"
)

// newTestRouter wires the full route table over in-memory repositories,
// mirroring the production setup minus the database.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := memory.NewUserRepository()
	tasks := memory.NewTaskRepository()
	subTasks := memory.NewSubTaskRepository()

	logger := zerolog.Nop()
	handler := v1.New(
		logger,
		services.NewAuthService(logger, users, "taskboard-test", []byte("test-signing-key"), time.Hour),
		services.NewTaskService(logger, tasks, subTasks),
		services.NewSubTaskService(logger, tasks, subTasks),
	)

	router := gin.New()
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

	return router
}

// doJSON performs a request against the router. A non-empty token is sent
// as a bearer credential; a nil body sends no payload.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &body)
	return body.Message
}

// registerUser creates an account and returns its bearer token.
func registerUser(t *testing.T, router *gin.Engine, username, email string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// createTask makes a task for the token's user and returns its id.
func createTask(t *testing.T, router *gin.Engine, token, title string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/tasks", token, gin.H{"title": title})
	require.Equal(t, http.StatusCreated, w.Code)

	var task struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &task)
	require.NotEmpty(t, task.ID)
	return task.ID
}
