package routes

import (
	"net/http"
	"strings"

	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/middleware"
	"taskdeck/taskdeck/models"
	"taskdeck/taskdeck/repository"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate"`
	CategoryID  string   `json:"categoryId" binding:"required"`
	TagIDs      []string `json:"tagIds"`
}

type updateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Completed   *bool     `json:"completed"`
	Priority    *string   `json:"priority"`
	DueDate     *string   `json:"dueDate"`
	CategoryID  *string   `json:"categoryId"`
	TagIDs      *[]string `json:"tagIds"`
}

type replaceTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate"`
	CategoryID  string   `json:"categoryId" binding:"required"`
	TagIDs      []string `json:"tagIds"`
}

func RegisterTaskRoutes(group *gin.RouterGroup, taskService services.TaskServiceInterface) {
	group.GET("/tasks", func(c *gin.Context) { GetTasks(c, taskService) })
	group.POST("/tasks", func(c *gin.Context) { CreateTask(c, taskService) })
	group.GET("/tasks/:id", func(c *gin.Context) { GetTaskByID(c, taskService) })
	group.PUT("/tasks/:id", func(c *gin.Context) { ReplaceTask(c, taskService) })
	group.PATCH("/tasks/:id", func(c *gin.Context) { UpdateTask(c, taskService) })
	group.DELETE("/tasks/:id", func(c *gin.Context) { DeleteTask(c, taskService) })
	group.PATCH("/tasks/:id/completar", func(c *gin.Context) { ToggleTaskComplete(c, taskService) })
}

func GetTasks(c *gin.Context, taskService services.TaskServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	input := services.ListTasksInput{
		Completed:     c.Query("completed"),
		CategoryID:    c.Query("categoryId"),
		Priority:      c.Query("priority"),
		DueDateFrom:   c.Query("dueDateFrom"),
		DueDateTo:     c.Query("dueDateTo"),
		Search:        c.Query("search"),
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
	}
	if tags := c.Query("tags"); tags != "" {
		input.Tags = strings.Split(tags, ",")
	}

	tasks, err := taskService.GetAll(userID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response := make([]models.TaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = models.NewTaskResponse(t.Task, t.Tags)
	}
	c.JSON(http.StatusOK, response)
}

func CreateTask(c *gin.Context, taskService services.TaskServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	var request createTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	created, err := taskService.Create(userID, services.CreateTaskInput{
		Title:       request.Title,
		Description: request.Description,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
		CategoryID:  request.CategoryID,
		TagIDs:      request.TagIDs,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewTaskResponse(created.Task, created.Tags))
}

func GetTaskByID(c *gin.Context, taskService services.TaskServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	id, err := domain.ParseID("id", c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	task, err := taskService.GetOneByID(id, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(task.Task, task.Tags))
}

func ReplaceTask(c *gin.Context, taskService services.TaskServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	id, err := domain.ParseID("id", c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var request replaceTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	updated, err := taskService.Replace(id, userID, services.ReplaceTaskInput{
		Title:       request.Title,
		Description: request.Description,
		Completed:   request.Completed,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
		CategoryID:  request.CategoryID,
		TagIDs:      request.TagIDs,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(updated.Task, updated.Tags))
}

func UpdateTask(c *gin.Context, taskService services.TaskServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	id, err := domain.ParseID("id", c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var request updateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	updated, err := taskService.Update(id, userID, services.UpdateTaskInput{
		Title:       request.Title,
		Description: request.Description,
		Completed:   request.Completed,
		Priority:    request.Priority,
		DueDate:     request.DueDate,
		CategoryID:  request.CategoryID,
		TagIDs:      request.TagIDs,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(updated.Task, updated.Tags))
}

func DeleteTask(c *gin.Context, taskService services.TaskServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	id, err := domain.ParseID("id", c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if err := taskService.Delete(id, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type completeTaskRequest struct {
	Completed *bool `json:"completed"`
}

// ToggleTaskComplete drives the /completar endpoint: a body with a completed
// flag forces that state, an empty body flips the current one.
func ToggleTaskComplete(c *gin.Context, taskService services.TaskServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	id, err := domain.ParseID("id", c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var request completeTaskRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&request); err != nil {
			bindingError(c, err)
			return
		}
	}

	var toggled repository.TaskWithTags
	if request.Completed != nil {
		toggled, err = taskService.SetCompleted(id, userID, *request.Completed)
	} else {
		toggled, err = taskService.ToggleComplete(id, userID)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(toggled.Task, toggled.Tags))
}
