package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

// PathID parses an integer id path parameter. On failure it writes the
// 400 response itself and returns ok=false.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httputil.RespondWithValidationError(c, "invalid id", []httputil.FieldError{
			{Field: name, Reason: "must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}
