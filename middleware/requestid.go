package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/logkit/log"
	"github.com/kbukum/logkit/mdc"
)

// RequestID injects a unique X-Request-Id header into every
// request/response and exposes the id to the handler chain through the
// request goroutine's diagnostic context. The previous MDC state is
// restored when the request completes.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)

		scope := mdc.NewScope(log.FieldRequestID, id)
		defer scope.End()
		c.Next()
	}
}
