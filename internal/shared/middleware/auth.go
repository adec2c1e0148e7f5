package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deadparty-backend/internal/shared/response"
	"deadparty-backend/pkg/jwt"
)

// Context keys set by the auth middlewares.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware requires a valid Bearer access token.
// Sets userID (uuid.UUID) and role (string) in the gin context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c, manager)
		if !ok {
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user id in token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// StaffMiddleware gates moderation endpoints. Must run after AuthMiddleware.
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRoleKey)
		if !ok || role != "staff" {
			response.Forbidden(c, "staff role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated caller's id from the gin context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func parseBearerToken(c *gin.Context, manager *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization header")
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header format")
		return nil, false
	}

	claims, err := manager.ValidateAccessToken(parts[1])
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
		return nil, false
	}

	return claims, true
}
