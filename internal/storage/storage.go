// Package storage 定义数据访问层接口。
package storage

import (
	"context"
	"errors"

	"moltmail/backend/internal/domain"
)

// 存储层的业务错误定义
var (
	// ErrEmailAddressTaken 表示派生地址已被占用。
	// 唯一约束是并发注册下的最终仲裁者，预检查只是快速路径。
	ErrEmailAddressTaken = errors.New("email address already exists")
)

// UserRepository 定义用户相关的存储操作。
//
// 按 token / 地址查询时，未命中返回 (nil, nil) 而非错误；
// 错误仅用于存储本身的故障。
type UserRepository interface {
	// CreateUser 插入新用户。派生地址冲突时返回 ErrEmailAddressTaken。
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByToken 根据访问令牌查找用户。
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)

	// GetUserByEmail 根据规范化地址查找用户。
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// EmailExists 检查规范化地址是否已被占用。
	EmailExists(ctx context.Context, email string) (bool, error)

	// UpdateLastActive 将用户的 last_active 更新为当前时间。
	UpdateLastActive(ctx context.Context, userID string) error
}

// EmailRepository 定义邮件相关的存储操作。
type EmailRepository interface {
	// SaveEmail 插入新邮件。
	SaveEmail(ctx context.Context, email *domain.Email) error

	// GetEmailsForUser 返回收件人为该地址的全部邮件，按发送时间降序。
	GetEmailsForUser(ctx context.Context, address string) ([]domain.Email, error)

	// GetSentEmails 返回发件人为该地址的全部邮件，按发送时间降序。
	GetSentEmails(ctx context.Context, address string) ([]domain.Email, error)

	// GetUnreadCount 返回该地址的未读邮件数。
	GetUnreadCount(ctx context.Context, address string) (int, error)

	// MarkEmailAsRead 将邮件置为已读。
	// 不检查邮件是否存在，也不检查调用者是否为收件人；
	// 对不存在的 ID 同样静默成功（保持历史行为）。
	MarkEmailAsRead(ctx context.Context, emailID string) error
}

// Store 聚合全部存储操作。
type Store interface {
	UserRepository
	EmailRepository

	// Health 检查存储是否可用。
	Health(ctx context.Context) error

	// Close 释放底层资源。
	Close()
}
