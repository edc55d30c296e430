// Package health 提供存活与就绪探针。
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/heptiolabs/healthcheck"
	"go.uber.org/zap"

	"moltmail/backend/internal/storage"
)

// HealthChecker 健康检查器
type HealthChecker struct {
	health healthcheck.Handler
	store  storage.Store
	logger *zap.Logger
}

// NewHealthChecker 创建健康检查器并注册数据库探针。
func NewHealthChecker(store storage.Store, logger *zap.Logger) *HealthChecker {
	hc := &HealthChecker{
		health: healthcheck.NewHandler(),
		store:  store,
		logger: logger,
	}

	hc.health.AddReadinessCheck("database", hc.databaseCheck())
	hc.health.AddLivenessCheck("database", hc.databaseCheck())

	return hc
}

// databaseCheck 带超时地检查存储连通性。
func (hc *HealthChecker) databaseCheck() healthcheck.Check {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := hc.store.Health(ctx); err != nil {
			hc.logger.Warn("database health check failed", zap.Error(err))
			return err
		}
		return nil
	}
}

// LiveEndpoint 返回存活探针处理函数。
func (hc *HealthChecker) LiveEndpoint() http.HandlerFunc {
	return hc.health.LiveEndpoint
}

// ReadyEndpoint 返回就绪探针处理函数。
func (hc *HealthChecker) ReadyEndpoint() http.HandlerFunc {
	return hc.health.ReadyEndpoint
}
