package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"herbtrack/internal/server/auth"
	"herbtrack/internal/shared"
)

// userIDKey is the gin context key the auth middleware stores the caller's
// user id under.
const userIDKey = "user_id"

// BearerAuth rejects requests without a valid bearer token and stores the
// token's user id on the context for handlers downstream.
func BearerAuth(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": shared.ErrorInvalidAuthheaderFormat.Error()})
			return
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, "Bearer "), secretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
