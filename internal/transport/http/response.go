// Package httptransport 实现 REST API 的处理器与路由。
package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 成功响应：在载荷上附加 success=true 后输出 200。
func Success(c *gin.Context, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(http.StatusOK, payload)
}

// Fail 失败响应：固定的 {success:false, error:<msg>} 结构。
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}
