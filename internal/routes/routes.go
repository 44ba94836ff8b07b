package routes

import (
	"net/http"

	"realestate_backend/internal/handlers"
	"realestate_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP and websocket route.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := ginRouter.Group("")
	appHandlers.AuthHandler.RegisterRoutes(root)
	appHandlers.HomeHandler.RegisterRoutes(root)

	appHandlers.NotificationHandler.RegisterRoutes(ginRouter)
	logger.Info("WebSocket route /ws registered")
}
