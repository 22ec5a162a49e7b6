// Package httpx holds the gin plumbing shared by the five apps: the error
// envelope, id parsing and generic CRUD route registration.
package httpx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend-suite/internal/apperr"
)

// Error writes the envelope for a service failure. The three service error
// kinds map onto 404/400/409; anything else is a 500.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": gin.H{
		"kind":    kind.String(),
		"message": err.Error(),
	}})
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
		"kind":    "validation",
		"message": msg,
	}})
}

// IDParam parses the :id path parameter. On failure it writes a 400 and
// returns ok=false.
func IDParam(c *gin.Context) (uint, bool) {
	return UintParam(c, "id")
}

// UintParam parses any named numeric path parameter.
func UintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		BadRequest(c, "invalid "+name+": "+c.Param(name))
		return 0, false
	}
	return uint(id), true
}
