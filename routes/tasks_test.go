package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/repository"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testUserID = uuid.Must(uuid.Parse("123e4567-e89b-12d3-a456-426614174000"))

// MockTaskService serves canned task data for handler tests.
type MockTaskService struct {
	toggled bool
}

func (m *MockTaskService) sample() repository.TaskWithTags {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	task := domain.TaskFromPrimitives(
		uuid.Must(uuid.Parse("223e4567-e89b-12d3-a456-426614174000")),
		"Escribir informe", "Informe mensual", false, "MEDIUM",
		nil, nil, testUserID, uuid.New(), nil, created, created,
	)
	return repository.TaskWithTags{Task: task}
}

func (m *MockTaskService) Create(userID uuid.UUID, input services.CreateTaskInput) (repository.TaskWithTags, error) {
	title, err := domain.NewTaskTitle(input.Title)
	if err != nil {
		return repository.TaskWithTags{}, err
	}
	sample := m.sample()
	sample.Task.Title = title
	return sample, nil
}

func (m *MockTaskService) GetAll(userID uuid.UUID, input services.ListTasksInput) ([]repository.TaskWithTags, error) {
	return []repository.TaskWithTags{m.sample()}, nil
}

func (m *MockTaskService) GetOneByID(id, userID uuid.UUID) (repository.TaskWithTags, error) {
	sample := m.sample()
	if id != sample.Task.ID {
		return repository.TaskWithTags{}, domain.ErrTaskNotFound
	}
	return sample, nil
}

func (m *MockTaskService) Update(id, userID uuid.UUID, input services.UpdateTaskInput) (repository.TaskWithTags, error) {
	return m.sample(), nil
}

func (m *MockTaskService) Replace(id, userID uuid.UUID, input services.ReplaceTaskInput) (repository.TaskWithTags, error) {
	return m.sample(), nil
}

func (m *MockTaskService) Delete(id, userID uuid.UUID) error {
	if id != m.sample().Task.ID {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (m *MockTaskService) ToggleComplete(id, userID uuid.UUID) (repository.TaskWithTags, error) {
	sample := m.sample()
	if id != sample.Task.ID {
		return repository.TaskWithTags{}, domain.ErrTaskNotFound
	}
	m.toggled = true
	sample.Task.MarkAsCompleted()
	return sample, nil
}

func (m *MockTaskService) SetCompleted(id, userID uuid.UUID, completed bool) (repository.TaskWithTags, error) {
	sample := m.sample()
	if id != sample.Task.ID {
		return repository.TaskWithTags{}, domain.ErrTaskNotFound
	}
	if completed {
		sample.Task.MarkAsCompleted()
	} else {
		sample.Task.MarkAsIncomplete()
	}
	return sample, nil
}

// testAuth stands in for the auth middleware and pins the authenticated user.
func testAuth(c *gin.Context) {
	c.Set("userID", testUserID)
	c.Next()
}

func setupTaskRouter(taskService services.TaskServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api")
	group.Use(testAuth)
	RegisterTaskRoutes(group, taskService)
	return router
}

func TestGetTasks(t *testing.T) {
	router := setupTaskRouter(&MockTaskService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "Escribir informe", response[0]["title"])
	assert.Equal(t, testUserID.String(), response[0]["userId"])
}

func TestCreateTask_MissingFields(t *testing.T) {
	router := setupTaskRouter(&MockTaskService{})

	body := bytes.NewBufferString(`{"description":"sin título"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid request data", response.Error)
	assert.NotEmpty(t, response.Details)

	fields := make([]string, len(response.Details))
	for i, d := range response.Details {
		fields[i] = d.Field
	}
	// Field paths use the json tag form, not the Go field name.
	assert.Contains(t, fields, "body.title")
	assert.Contains(t, fields, "body.categoryId")
}

func TestCreateTask_Success(t *testing.T) {
	router := setupTaskRouter(&MockTaskService{})

	body := bytes.NewBufferString(`{"title":"Nueva tarea","categoryId":"323e4567-e89b-12d3-a456-426614174000"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Nueva tarea")
}

func TestGetTaskByID_InvalidID(t *testing.T) {
	router := setupTaskRouter(&MockTaskService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be a valid UUID")
}

func TestGetTaskByID_NotFound(t *testing.T) {
	router := setupTaskRouter(&MockTaskService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Task not found")
}

func TestToggleTaskComplete(t *testing.T) {
	mockService := &MockTaskService{}
	router := setupTaskRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/223e4567-e89b-12d3-a456-426614174000/completar", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockService.toggled)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["completed"])
	assert.NotNil(t, response["completedAt"])
}

func TestToggleTaskComplete_ExplicitState(t *testing.T) {
	mockService := &MockTaskService{}
	router := setupTaskRouter(mockService)

	body := bytes.NewBufferString(`{"completed":true}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/223e4567-e89b-12d3-a456-426614174000/completar", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Explicit state bypasses the toggle path.
	assert.False(t, mockService.toggled)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["completed"])
}

func TestDeleteTask(t *testing.T) {
	router := setupTaskRouter(&MockTaskService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/223e4567-e89b-12d3-a456-426614174000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
