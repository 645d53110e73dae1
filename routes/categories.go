package routes

import (
	"net/http"

	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/middleware"
	"taskdeck/taskdeck/models"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
)

type createCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func RegisterCategoryRoutes(group *gin.RouterGroup, categoryService services.CategoryServiceInterface) {
	group.GET("/categories", func(c *gin.Context) { GetCategories(c, categoryService) })
	group.POST("/categories", func(c *gin.Context) { CreateCategory(c, categoryService) })
	group.GET("/categories/:id", func(c *gin.Context) { GetCategoryByID(c, categoryService) })
	group.PATCH("/categories/:id", func(c *gin.Context) { UpdateCategory(c, categoryService) })
	group.DELETE("/categories/:id", func(c *gin.Context) { DeleteCategory(c, categoryService) })
}

func GetCategories(c *gin.Context, categoryService services.CategoryServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	categories, err := categoryService.GetAll(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCategoryResponseList(categories))
}

func CreateCategory(c *gin.Context, categoryService services.CategoryServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	var request createCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	category, err := categoryService.Create(userID, services.CreateCategoryInput{
		Name:  request.Name,
		Color: request.Color,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewCategoryResponse(category))
}

func GetCategoryByID(c *gin.Context, categoryService services.CategoryServiceInterface) {
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

	category, err := categoryService.GetOneByID(id, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCategoryResponse(category))
}

func UpdateCategory(c *gin.Context, categoryService services.CategoryServiceInterface) {
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

	var request updateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	category, err := categoryService.Update(id, userID, services.UpdateCategoryInput{
		Name:  request.Name,
		Color: request.Color,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCategoryResponse(category))
}

func DeleteCategory(c *gin.Context, categoryService services.CategoryServiceInterface) {
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

	if err := categoryService.Delete(id, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
