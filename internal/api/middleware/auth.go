package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"messagely/internal/api/service"
	"messagely/pkg/apperror"
)

// UsernameKey is the gin context key holding the authenticated username.
const UsernameKey = "username"

// AuthMiddleware checks for a valid bearer token in the Authorization
// header and stores the authenticated username on the request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperror.NewAuthError("missing authorization header", nil))
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWith(c, apperror.NewAuthError("invalid authorization header format", nil))
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			abortWith(c, apperror.NewAuthError("invalid token", err))
			return
		}

		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}

// RequireSameUser ensures the authenticated identity equals the named
// route parameter. Must run after AuthMiddleware.
func RequireSameUser(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := CurrentUsername(c)
		if username == "" {
			abortWith(c, apperror.NewAuthError("not authenticated", nil))
			return
		}
		if c.Param(param) != username {
			abortWith(c, apperror.NewUnauthorizedError("not allowed for this user", nil))
			return
		}
		c.Next()
	}
}

// CurrentUsername returns the authenticated username, or "" when the
// request carries no identity.
func CurrentUsername(c *gin.Context) string {
	value, exists := c.Get(UsernameKey)
	if !exists {
		return ""
	}
	username, ok := value.(string)
	if !ok {
		return ""
	}
	return username
}

func abortWith(c *gin.Context, appErr *apperror.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode(), appErr.ToResponse())
}
