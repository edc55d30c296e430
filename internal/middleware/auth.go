// Package middleware 提供 Gin 中间件：令牌认证、安全头、日志与指标。
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moltmail/backend/internal/domain"
	"moltmail/backend/internal/service"
)

const (
	// ContextUserKey 认证中间件写入 gin.Context 的用户键。
	ContextUserKey = "user"
	// ContextUserIDKey 认证中间件写入 gin.Context 的用户 ID 键。
	ContextUserIDKey = "userID"
)

// Authenticator 根据 Bearer 令牌解析用户。
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// TokenAuth 创建 Bearer 令牌认证中间件。
//
// Authorization 头缺失或格式不对时返回 401 "Authorization required"，
// 令牌未命中任何用户时返回 401 "Invalid token"。
func TokenAuth(auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization required",
			})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if errors.Is(err, service.ErrInvalidToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid token",
			})
			return
		}
		if err != nil {
			log.Error("token lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Internal server error",
			})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// UserFromContext 取出认证中间件放入的用户。
func UserFromContext(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}

// extractBearerToken 从 Authorization 头解析 Bearer 令牌。
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
