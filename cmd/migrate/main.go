package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"moltmail/backend/internal/config"
	"moltmail/backend/internal/logger"
	"moltmail/backend/internal/storage/postgres"
)

// main 独立执行数据库迁移，用于部署流水线。
// 服务自身启动时也会应用迁移，这里只是提前执行的入口。
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.NewLogger(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	if cfg.Database.DSN == "" {
		log.Fatal("MOLTMAIL_DATABASE_DSN is required for migration")
	}

	if err := postgres.InitSchema(context.Background(), cfg.Database.DSN); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migrations applied")
}
