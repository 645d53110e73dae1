package routes

import (
	"net/http"

	"taskdeck/taskdeck/middleware"
	"taskdeck/taskdeck/models"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
)

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func RegisterUserRoutes(group *gin.RouterGroup, userService services.UserServiceInterface) {
	group.GET("/users/me", func(c *gin.Context) { GetCurrentUser(c, userService) })
	group.PUT("/users/me", func(c *gin.Context) { UpdateCurrentUser(c, userService) })
}

func GetCurrentUser(c *gin.Context, userService services.UserServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	user, err := userService.GetByID(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

func UpdateCurrentUser(c *gin.Context, userService services.UserServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	var request updateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	user, err := userService.Update(userID, services.UpdateUserInput{
		Name:  request.Name,
		Email: request.Email,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}
