package routes

import (
	"net/http"

	"taskdeck/taskdeck/middleware"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes mounts the event stream endpoint on the
// authenticated group so only logged-in users can connect.
func RegisterWebSocketRoutes(group *gin.RouterGroup, wsService services.WebSocketServiceInterface) {
	group.GET("/ws", func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
			return
		}
		wsService.HandleConnection(c.Writer, c.Request, userID)
	})
}
