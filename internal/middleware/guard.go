package middleware

import (
	"strings"

	"realestate_backend/internal/auth"
	"realestate_backend/internal/logger"
	"realestate_backend/internal/models"
	"realestate_backend/internal/repositories"
	"realestate_backend/pkg/apperrors"
	"realestate_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IdentityHandler is a gin handler that receives the caller's verified
// identity. The identity is nil on public routes.
type IdentityHandler func(c *gin.Context, user *auth.Identity)

// TokenParser verifies a bearer token and returns its payload.
type TokenParser interface {
	ParseToken(tokenStr string) (*auth.Identity, error)
}

// Guard admits a request only when its bearer token is valid, the user it
// names still exists, and that user's role is allowed on the route.
type Guard struct {
	tokens   TokenParser
	userRepo repositories.UserRepository
}

func NewGuard(tokens TokenParser, userRepo repositories.UserRepository) *Guard {
	return &Guard{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// Protect wraps next with a role check. With no roles the route is public
// and next receives a nil identity.
func (g *Guard) Protect(roles auth.RoleSet, next IdentityHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if roles.IsPublic() {
			next(c, nil)
			return
		}

		identity, ok := g.authorize(c, roles)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), identity.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.IdentityContextKey), identity)

		next(c, identity)
	}
}

// Roles is shorthand for auth.NewRoleSet.
func Roles(roles ...models.UserType) auth.RoleSet {
	return auth.NewRoleSet(roles...)
}

func (g *Guard) authorize(c *gin.Context, roles auth.RoleSet) (*auth.Identity, bool) {
	ctx := c.Request.Context()

	tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		logger.CtxDebug(ctx, "Request denied: missing bearer token", "path", c.Request.URL.Path)
		return nil, false
	}

	identity, err := g.tokens.ParseToken(tokenStr)
	if err != nil {
		logger.CtxDebug(ctx, "Request denied: token rejected", "path", c.Request.URL.Path, "reason", err.Error())
		return nil, false
	}

	user, err := g.userRepo.FindByID(dbFromContext(c), identity.ID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.CtxWithError(ctx, "Failed to load user for authorization", err, "user_id", identity.ID)
		}
		return nil, false
	}

	if !roles.Allows(user.UserType) {
		logger.CtxDebug(ctx, "Request denied: role not allowed", "user_id", user.ID, "role", string(user.UserType))
		return nil, false
	}

	return identity, true
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func dbFromContext(c *gin.Context) *gorm.DB {
	if val, ok := c.Get(string(contextkeys.DBContextKey)); ok {
		if db, ok := val.(*gorm.DB); ok {
			return db
		}
	}
	panic("critical error: DBMiddleware did not set the db key")
}

// IdentityFrom returns the identity stored by Protect, if any.
func IdentityFrom(c *gin.Context) (*auth.Identity, bool) {
	val, ok := c.Get(string(contextkeys.IdentityContextKey))
	if !ok {
		return nil, false
	}
	identity, ok := val.(*auth.Identity)
	return identity, ok && identity != nil
}
