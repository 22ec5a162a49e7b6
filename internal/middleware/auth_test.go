package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-suite/internal/middleware"
	"backend-suite/internal/util"
)

func guardedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequireAuth(secret))
	r.GET("/ping", func(c *gin.Context) {
		id := c.GetUint(middleware.UserIDKey)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return r
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := guardedRouter("s")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBearerHeader(t *testing.T) {
	r := guardedRouter("s")

	token, err := util.GenerateToken("s", 9, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":9`)
}

func TestRequireAuthQueryToken(t *testing.T) {
	r := guardedRouter("s")

	token, err := util.GenerateToken("s", 2, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthWrongSecret(t *testing.T) {
	r := guardedRouter("s")

	token, err := util.GenerateToken("other", 2, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
