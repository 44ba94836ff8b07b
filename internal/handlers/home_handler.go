package handlers

import (
	"net/http"

	"realestate_backend/internal/auth"
	"realestate_backend/internal/logger"
	"realestate_backend/internal/middleware"
	"realestate_backend/internal/models"
	"realestate_backend/internal/services"
	"realestate_backend/internal/services/dto"
	"realestate_backend/internal/types"
	"realestate_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	*BaseHandler
	homeService services.HomeService
	guard       *middleware.Guard
}

func NewHomeHandler(base *BaseHandler, homeService services.HomeService, guard *middleware.Guard) *HomeHandler {
	return &HomeHandler{
		BaseHandler: base,
		homeService: homeService,
		guard:       guard,
	}
}

func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := middleware.Roles()
	realtor := middleware.Roles(models.UserTypeRealtor)
	buyer := middleware.Roles(models.UserTypeBuyer)

	homes := rg.Group("/home")
	{
		homes.GET("", h.guard.Protect(public, h.GetHomes))
		homes.GET("/:id", h.guard.Protect(public, h.GetHome))
		homes.POST("", h.guard.Protect(realtor, h.CreateHome))
		homes.PUT("/:id", h.guard.Protect(realtor, h.UpdateHome))
		homes.DELETE("/:id", h.guard.Protect(realtor, h.DeleteHome))
		homes.POST("/inquire/:id", h.guard.Protect(buyer, h.Inquire))
		homes.GET("/:id/messages", h.guard.Protect(realtor, h.GetHomeMessages))
	}
}

// GetHomes builds the filter from the query parameters that are present.
func (h *HomeHandler) GetHomes(c *gin.Context, _ *auth.Identity) {
	var query types.HomeQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	filters, err := query.ToFilters()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	homes, err := h.homeService.GetHomes(h.GetDB(c), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, homes)
}

func (h *HomeHandler) GetHome(c *gin.Context, _ *auth.Identity) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	home, err := h.homeService.GetHome(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, home)
}

func (h *HomeHandler) CreateHome(c *gin.Context, user *auth.Identity) {
	var req dto.CreateHomeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	home, err := h.homeService.CreateHome(h.GetDB(c), &req, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Listing created", "home_id", home.ID)
	c.JSON(http.StatusCreated, home)
}

func (h *HomeHandler) UpdateHome(c *gin.Context, user *auth.Identity) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if !h.requireOwnership(c, id, user) {
		return
	}

	var req dto.UpdateHomeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	home, err := h.homeService.UpdateHome(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, home)
}

func (h *HomeHandler) DeleteHome(c *gin.Context, user *auth.Identity) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if !h.requireOwnership(c, id, user) {
		return
	}

	if err := h.homeService.DeleteHome(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Listing deleted", "home_id", id)
	c.Status(http.StatusNoContent)
}

func (h *HomeHandler) Inquire(c *gin.Context, user *auth.Identity) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	var req dto.InquireRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.homeService.Inquire(c.Request.Context(), h.GetDB(c), user, id, req.Message)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *HomeHandler) GetHomeMessages(c *gin.Context, user *auth.Identity) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if !h.requireOwnership(c, id, user) {
		return
	}

	messages, err := h.homeService.GetHomeMessages(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// requireOwnership answers 401 unless user is the listing's realtor. A missing
// listing answers 404.
func (h *HomeHandler) requireOwnership(c *gin.Context, homeID uint, user *auth.Identity) bool {
	realtor, err := h.homeService.GetRealtorByHome(h.GetDB(c), homeID)
	if err != nil {
		h.HandleServiceError(c, err)
		return false
	}

	if realtor.ID != user.ID {
		logger.CtxWarn(c.Request.Context(), "Ownership check failed", "home_id", homeID, "owner_id", realtor.ID)
		h.HandleServiceError(c, apperrors.ErrUnauthorized)
		return false
	}
	return true
}
