package routes

import (
	"net/http"

	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/middleware"
	"taskdeck/taskdeck/models"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
)

type createTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type updateTagRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func RegisterTagRoutes(group *gin.RouterGroup, tagService services.TagServiceInterface) {
	group.GET("/tags", func(c *gin.Context) { GetTags(c, tagService) })
	group.POST("/tags", func(c *gin.Context) { CreateTag(c, tagService) })
	group.GET("/tags/:id", func(c *gin.Context) { GetTagByID(c, tagService) })
	group.PATCH("/tags/:id", func(c *gin.Context) { UpdateTag(c, tagService) })
	group.DELETE("/tags/:id", func(c *gin.Context) { DeleteTag(c, tagService) })
	group.GET("/tasks/:id/tags", func(c *gin.Context) { GetTagsByTask(c, tagService) })
	group.POST("/tags/:id/assign/:taskId", func(c *gin.Context) { AssignTag(c, tagService) })
	group.DELETE("/tags/:id/assign/:taskId", func(c *gin.Context) { UnassignTag(c, tagService) })
}

func GetTags(c *gin.Context, tagService services.TagServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	tags, err := tagService.GetAll(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTagResponseList(tags))
}

func CreateTag(c *gin.Context, tagService services.TagServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	var request createTagRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	tag, err := tagService.Create(userID, services.CreateTagInput{
		Name:  request.Name,
		Color: request.Color,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewTagResponse(tag))
}

func GetTagByID(c *gin.Context, tagService services.TagServiceInterface) {
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

	tag, err := tagService.GetOneByID(id, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTagResponse(tag))
}

func UpdateTag(c *gin.Context, tagService services.TagServiceInterface) {
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

	var request updateTagRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	tag, err := tagService.Update(id, userID, services.UpdateTagInput{
		Name:  request.Name,
		Color: request.Color,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTagResponse(tag))
}

func DeleteTag(c *gin.Context, tagService services.TagServiceInterface) {
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

	if err := tagService.Delete(id, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func GetTagsByTask(c *gin.Context, tagService services.TagServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	taskID, err := domain.ParseID("id", c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	tags, err := tagService.GetByTaskID(taskID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTagResponseList(tags))
}

func AssignTag(c *gin.Context, tagService services.TagServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	tagID, err := domain.ParseID("id", c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	taskID, err := domain.ParseID("taskId", c.Param("taskId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if err := tagService.AssignToTask(tagID, taskID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag assigned to task"})
}

func UnassignTag(c *gin.Context, tagService services.TagServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	tagID, err := domain.ParseID("id", c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	taskID, err := domain.ParseID("taskId", c.Param("taskId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if err := tagService.UnassignFromTask(tagID, taskID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag removed from task"})
}
