package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"moltmail/backend/internal/domain"
	"moltmail/backend/internal/storage"
)

// ========== User Repository ==========

// CreateUser 插入新用户，created_at 由数据库生成。
// 派生地址或名称的唯一约束冲突映射为 storage.ErrEmailAddressTaken，
// 并发注册同名 Agent 时以该约束为最终仲裁。
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	const q = `
		INSERT INTO users (id, agent_name, email_address, token)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := s.pool.QueryRow(ctx, q,
		user.ID,
		user.AgentName,
		user.EmailAddress,
		user.Token,
	).Scan(&user.CreatedAt)

	if isUniqueViolation(err) {
		return storage.ErrEmailAddressTaken
	}
	return err
}

// GetUserByToken 根据访问令牌查找用户，未命中返回 (nil, nil)。
func (s *Store) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	const q = `
		SELECT id, agent_name, email_address, token, created_at, last_active
		FROM users
		WHERE token = $1
	`
	return s.scanUser(s.pool.QueryRow(ctx, q, token))
}

// GetUserByEmail 根据规范化地址查找用户，未命中返回 (nil, nil)。
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
		SELECT id, agent_name, email_address, token, created_at, last_active
		FROM users
		WHERE email_address = $1
	`
	return s.scanUser(s.pool.QueryRow(ctx, q, email))
}

// EmailExists 检查规范化地址是否已被注册。
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE email_address = $1)`

	var exists bool
	if err := s.pool.QueryRow(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateLastActive 将用户的 last_active 置为当前时间。
func (s *Store) UpdateLastActive(ctx context.Context, userID string) error {
	const q = `UPDATE users SET last_active = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := s.pool.Exec(ctx, q, userID)
	return err
}

// scanUser 将单行查询结果逐列扫描为用户实体。
func (s *Store) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.AgentName,
		&user.EmailAddress,
		&user.Token,
		&user.CreatedAt,
		&user.LastActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
