package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todolist-service/models"
	"todolist-service/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*mux.Router, *services.TaskService) {
	service := services.NewTaskService()
	handler := NewTaskHandler(service)

	r := mux.NewRouter()
	r.HandleFunc("/health", HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tasks", handler.GetAllTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tasks", handler.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/tasks/{taskId}", handler.GetTaskByID).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tasks/{taskId}", handler.UpdateTask).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/tasks/{taskId}", handler.DeleteTask).Methods(http.MethodDelete)
	return r, service
}

func doRequest(r *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "todolist-service", body["service"])
}

func TestGetAllTasksEmpty(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(r, http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateTask(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(r, http.MethodPost, "/api/v1/tasks", models.TaskCreate{
		Title:       "New Task",
		Description: "New description",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "New Task", task.Title)
	assert.False(t, task.Completed)
}

func TestCreateTaskEmptyTitle(t *testing.T) {
	r, service := newTestRouter()

	rec := doRequest(r, http.MethodPost, "/api/v1/tasks", models.TaskCreate{Description: "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.ListTasks())
}

func TestCreateTaskInvalidBody(t *testing.T) {
	r, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTaskByID(t *testing.T) {
	r, service := newTestRouter()
	created, err := service.CreateTask(models.TaskCreate{Title: "lookup", Description: "by id"})
	require.NoError(t, err)

	rec := doRequest(r, http.MethodGet, "/api/v1/tasks/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, *created, task)
}

func TestGetTaskByIDNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(r, http.MethodGet, "/api/v1/tasks/99999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task with ID 99999 not found")
}

func TestGetTaskByIDInvalidFormat(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(r, http.MethodGet, "/api/v1/tasks/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTaskPartialBody(t *testing.T) {
	r, service := newTestRouter()
	_, err := service.CreateTask(models.TaskCreate{Title: "keep me", Description: "and me"})
	require.NoError(t, err)

	rec := doRequest(r, http.MethodPut, "/api/v1/tasks/1", map[string]interface{}{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, "keep me", task.Title)
	assert.Equal(t, "and me", task.Description)
	assert.True(t, task.Completed)
}

func TestUpdateTaskNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(r, http.MethodPut, "/api/v1/tasks/7", map[string]interface{}{"title": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTask(t *testing.T) {
	r, service := newTestRouter()
	_, err := service.CreateTask(models.TaskCreate{Title: "short lived"})
	require.NoError(t, err)

	rec := doRequest(r, http.MethodDelete, "/api/v1/tasks/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(r, http.MethodGet, "/api/v1/tasks/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTaskNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(r, http.MethodDelete, "/api/v1/tasks/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
