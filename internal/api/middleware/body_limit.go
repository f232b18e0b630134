package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minasle/backend/pkg/response"
)

// BodyLimit caps request body size. All API payloads are small JSON
// documents; anything larger is rejected before binding.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Fail(c, http.StatusRequestEntityTooLarge, "Corpo da requisição muito grande")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
