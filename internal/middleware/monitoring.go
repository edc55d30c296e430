package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"moltmail/backend/internal/monitoring"
)

// HTTPMetrics 按方法、路由模板与状态码记录请求指标。
func HTTPMetrics(metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
