package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/client/api"
)

func staticToken(token string) func() string {
	return func() string { return token }
}

func TestClient_BearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := api.New(server.URL, staticToken("abc123"))
	_, err := client.Tasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)

	client = api.New(server.URL, staticToken(""))
	_, err = client.Tasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "unauthenticated request must not send an Authorization header")
}

func TestClient_RequestShape(t *testing.T) {
	type received struct {
		method string
		path   string
		body   map[string]any
	}

	var got received
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = received{method: r.Method, path: r.URL.Path}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&got.body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"64f000000000000000000001","title":"t"}`))
	}))
	defer server.Close()

	client := api.New(server.URL, staticToken("tok"))

	task, err := client.CreateTask(context.Background(), api.TaskInput{Title: "buy milk"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/tasks", got.path)
	assert.Equal(t, "buy milk", got.body["title"])
	assert.NotContains(t, got.body, "status", "omitted fields must stay out of the payload")
	assert.Equal(t, "t", task.Title)

	status := "done"
	_, err = client.UpdateSubTask(context.Background(), "p1", "s1", api.SubTaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/api/tasks/p1/subtasks/s1", got.path)
	assert.Equal(t, map[string]any{"status": "done"}, got.body)
}

func TestClient_DeleteEchoesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Task deleted successfully","id":"abc"}`))
	}))
	defer server.Close()

	client := api.New(server.URL, staticToken("tok"))
	id, err := client.DeleteTask(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Task not found"}`))
	}))
	defer server.Close()

	client := api.New(server.URL, staticToken("tok"))
	_, err := client.TaskDetail(context.Background(), "missing")
	require.Error(t, err)

	apiErr := new(api.Error)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Task not found", apiErr.Error())
}

func TestClient_ErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := api.New(server.URL, staticToken(""))
	_, err := client.Tasks(context.Background())
	require.Error(t, err)
	assert.Equal(t, "request failed with status 502", err.Error())
}
