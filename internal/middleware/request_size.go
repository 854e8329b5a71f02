package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postal-pickup-api/pkg/utils"
)

// MaxRequestSize is the largest request body the API accepts, in bytes.
const MaxRequestSize = 1 << 20

// RequestSizeMiddleware rejects bodies larger than MaxRequestSize before binding.
func RequestSizeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > MaxRequestSize {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestSize)
		c.Next()
	}
}
