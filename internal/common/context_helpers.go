// File: internal/common/context_helpers.go
package common

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetTokenFromHeader retrieves the bearer token from the Authorization header.
// Returns an empty string if not found.
func GetTokenFromHeader(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SetUserID attaches the resolved user id to the in-flight request.
func SetUserID(c *gin.Context, userID string) {
	c.Set(UserIDKey, userID)
}

// GetUserIDFromContext retrieves the user id attached by the identity middleware.
// Returns an empty string if not found.
func GetUserIDFromContext(c *gin.Context) string {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	userID, ok := val.(string)
	if !ok {
		return ""
	}
	return userID
}
