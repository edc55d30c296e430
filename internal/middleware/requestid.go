package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextRequestIDKey 请求 ID 在 gin.Context 中的键。
	ContextRequestIDKey = "requestID"
	// RequestIDHeader 请求 ID 的传递头。
	RequestIDHeader = "X-Request-ID"
)

// RequestID 为每个请求分配 ID，优先沿用上游传入的值。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
