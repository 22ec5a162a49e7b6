package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"backend-suite/internal/util"
)

// UserIDKey is the context key the guard stores the authenticated user id
// under.
const UserIDKey = "authUserID"

// RequireAuth validates the bearer token and stores the user id in the
// context. Routers attach it to the entity routes when auth is enabled in
// config.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"kind": "auth", "message": "missing bearer token",
			}})
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"kind": "auth", "message": "invalid or expired token",
			}})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
