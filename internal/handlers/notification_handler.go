package handlers

import (
	"realestate_backend/internal/auth"
	"realestate_backend/internal/logger"
	"realestate_backend/internal/middleware"
	"realestate_backend/internal/models"
	"realestate_backend/ws"

	"github.com/gin-gonic/gin"
)

// NotificationHandler opens the websocket a realtor receives inquiries on.
type NotificationHandler struct {
	*BaseHandler
	manager *ws.Manager
	guard   *middleware.Guard
}

func NewNotificationHandler(base *BaseHandler, manager *ws.Manager, guard *middleware.Guard) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler: base,
		manager:     manager,
		guard:       guard,
	}
}

func (h *NotificationHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ws", h.guard.Protect(middleware.Roles(models.UserTypeRealtor), h.Connect))
}

func (h *NotificationHandler) Connect(c *gin.Context, user *auth.Identity) {
	if err := ws.ServeWS(h.manager, c.Writer, c.Request, user.ID); err != nil {
		// The upgrader has already answered the client.
		logger.CtxWithError(c.Request.Context(), "Websocket upgrade failed", err)
		return
	}
	logger.CtxInfo(c.Request.Context(), "Realtor connected for inquiry notifications")
}
