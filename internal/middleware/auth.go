package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bizmate/booking-api/internal/model"
	authService "github.com/bizmate/booking-api/internal/service/auth"
	"github.com/bizmate/booking-api/pkg/errors"
	"github.com/bizmate/booking-api/pkg/httputil"
)

const (
	ContextUserID = "user_id"
	ContextEmail  = "user_email"
	ContextRole   = "user_role"
)

type AuthMiddleware struct {
	auth *authService.Service
}

func NewAuthMiddleware(auth *authService.Service) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate verifies the bearer token and stores the caller's identity
// in the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization format")
			return
		}

		claims, err := m.auth.ValidateAccessToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, model.Role(claims.Role))
		c.Next()
	}
}

// RequireManager lets managers and superusers through.
func (m *AuthMiddleware) RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := callerRole(c)
		if !ok || !role.CanManage() {
			abortForbidden(c, "manager role required")
			return
		}
		c.Next()
	}
}

// RequireSuperuser lets superusers through only.
func (m *AuthMiddleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := callerRole(c)
		if !ok || role != model.RoleSuperuser {
			abortForbidden(c, "superuser role required")
			return
		}
		c.Next()
	}
}

func callerRole(c *gin.Context) (model.Role, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(model.Role)
	return role, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	httputil.RespondWithError(c, &errors.AppError{
		Code:    errors.ErrUnauthorized,
		Message: message,
	})
	c.Abort()
}

func abortForbidden(c *gin.Context, message string) {
	httputil.RespondWithError(c, errors.Forbidden(message))
	c.Abort()
}
