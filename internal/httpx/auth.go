package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend-suite/internal/storage"
	"backend-suite/internal/util"
)

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login returns a handler that checks a username/password against the app's
// users table and answers with a signed JWT. creds extracts the id and the
// stored credential from the user row.
func Login[T any](users *storage.Repo[T], secret string, ttl time.Duration, creds func(*T) (uint, string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			BadRequest(c, "username and password are required")
			return
		}

		unauthorized := func() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"kind": "auth", "message": "invalid username or password",
			}})
		}

		u, err := users.First(c.Request.Context(), req.Username, "username = ?", req.Username)
		if err != nil {
			// same answer whether the user is missing or the password is
			// wrong
			unauthorized()
			return
		}
		id, stored := creds(u)
		if !util.VerifyPassword(stored, req.Password) {
			unauthorized()
			return
		}

		token, err := util.GenerateToken(secret, id, ttl)
		if err != nil {
			Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "userId": id})
	}
}
