package handlers

import (
	"net/http"

	"realestate_backend/internal/auth"
	"realestate_backend/internal/middleware"
	"realestate_backend/internal/models"
	"realestate_backend/internal/services"
	"realestate_backend/internal/services/dto"
	"realestate_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	guard       *middleware.Guard
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, guard *middleware.Guard) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		guard:       guard,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := middleware.Roles()
	anyone := middleware.Roles(models.AllUserTypes...)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup/:userType", h.guard.Protect(public, h.Signup))
		authGroup.POST("/signin", h.guard.Protect(public, h.Signin))
		authGroup.POST("/key", h.guard.Protect(public, h.GenerateProductKey))
		authGroup.GET("/me", h.guard.Protect(anyone, h.Me))
	}
}

func (h *AuthHandler) Signup(c *gin.Context, _ *auth.Identity) {
	userType, ok := models.ParseUserType(c.Param("userType"))
	if !ok {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid user type: must be BUYER, REALTOR or ADMIN"))
		return
	}

	var req dto.SignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Signup(h.GetDB(c), userType, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Signin(c *gin.Context, _ *auth.Identity) {
	var req dto.SigninRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Signin(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) GenerateProductKey(c *gin.Context, _ *auth.Identity) {
	var req dto.ProductKeyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.GenerateProductKey(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Me(c *gin.Context, user *auth.Identity) {
	c.JSON(http.StatusOK, h.authService.Me(user))
}
