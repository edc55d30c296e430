package httptransport

import (
	"time"

	gincors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moltmail/backend/internal/config"
	"moltmail/backend/internal/health"
	"moltmail/backend/internal/middleware"
	"moltmail/backend/internal/monitoring"
	"moltmail/backend/internal/service"
)

// 普通 API 请求体上限，收发的都是短消息。
const maxRequestBody = 1 * 1024 * 1024 // 1MB

// RouterDependencies 路由器依赖项
type RouterDependencies struct {
	Config         *config.Config
	AccountService *service.AccountService
	MailService    *service.MailService
	Metrics        *monitoring.Metrics
	HealthChecker  *health.HealthChecker
	Logger         *zap.Logger
}

// NewRouter 创建并返回 Gin 路由实例。
func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryHandler(deps.Logger, deps.Metrics))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimit(maxRequestBody))
	if deps.Metrics != nil {
		router.Use(middleware.HTTPMetrics(deps.Metrics))
	}

	corsConfig := gincors.Config{
		AllowOrigins:     deps.Config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// 允许所有来源时必须关闭凭证支持。
	for _, origin := range corsConfig.AllowOrigins {
		if origin == "*" {
			corsConfig.AllowCredentials = false
			break
		}
	}
	router.Use(gincors.New(corsConfig))

	authHandler := NewAuthHandler(deps.AccountService, deps.Logger)
	emailHandler := NewEmailHandler(deps.MailService, deps.Logger)
	tokenAuth := middleware.TokenAuth(deps.AccountService, deps.Logger)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/register", authHandler.Register)

		emails := v1.Group("/emails", tokenAuth)
		{
			emails.GET("", emailHandler.Inbox)
			emails.POST("", emailHandler.Send)
			emails.POST("/:id/read", emailHandler.MarkRead)
			emails.GET("/sent", emailHandler.Sent)
		}
	}

	if deps.HealthChecker != nil {
		router.GET("/health", gin.WrapF(deps.HealthChecker.ReadyEndpoint()))
		router.GET("/health/live", gin.WrapF(deps.HealthChecker.LiveEndpoint()))
		router.GET("/health/ready", gin.WrapF(deps.HealthChecker.ReadyEndpoint()))
	}
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.HTTPHandler()))
	}

	return router
}
