// Package postgres 实现基于 PostgreSQL 的存储层。
//
// 所有操作都是单条参数化语句，实体字段逐列显式扫描。
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"go.uber.org/zap"
)

// PgxPool 是连接池的最小抽象，*pgxpool.Pool 与
// pgxmock.PgxPoolIface 均满足该接口，便于在测试中替换真实连接池。
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Store PostgreSQL 存储实现。
type Store struct {
	pool PgxPool
	log  *zap.Logger
}

// NewStore 用已建立的连接池创建存储实例。
func NewStore(pool PgxPool, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{pool: pool, log: log}
}

// Health 检查数据库连通性。
func (s *Store) Health(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close 关闭连接池。
func (s *Store) Close() {
	s.pool.Close()
	s.log.Info("PostgreSQL connection pool closed")
}

// isUniqueViolation 判断错误是否为唯一约束冲突（SQLSTATE 23505）。
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}
