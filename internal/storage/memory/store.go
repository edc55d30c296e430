// Package memory 提供基于内存的存储实现，用于开发模式与测试。
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"moltmail/backend/internal/domain"
	"moltmail/backend/internal/storage"
)

// Store 内存存储实现。所有方法在互斥锁内完成，返回的实体均为副本。
type Store struct {
	mu     sync.RWMutex
	users  map[string]*domain.User  // key: user ID
	emails map[string]*domain.Email // key: email ID

	// now 可在测试中替换以控制时间
	now func() time.Time
}

// NewStore 创建内存存储。
func NewStore() *Store {
	return &Store{
		users:  make(map[string]*domain.User),
		emails: make(map[string]*domain.Email),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser 插入新用户，地址冲突时返回 storage.ErrEmailAddressTaken。
func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.EmailAddress == user.EmailAddress || u.AgentName == user.AgentName {
			return storage.ErrEmailAddressTaken
		}
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}

	clone := *user
	s.users[user.ID] = &clone
	return nil
}

// GetUserByToken 根据令牌查找用户，未命中返回 (nil, nil)。
func (s *Store) GetUserByToken(_ context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Token == token {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

// GetUserByEmail 根据规范化地址查找用户，未命中返回 (nil, nil)。
func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.EmailAddress == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

// EmailExists 检查地址是否已被注册。
func (s *Store) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.EmailAddress == email {
			return true, nil
		}
	}
	return false, nil
}

// UpdateLastActive 更新用户活跃时间。对未知用户静默成功。
func (s *Store) UpdateLastActive(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[userID]; ok {
		now := s.now()
		u.LastActive = &now
	}
	return nil
}

// SaveEmail 插入新邮件。
func (s *Store) SaveEmail(_ context.Context, email *domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email.SentAt.IsZero() {
		email.SentAt = s.now()
	}

	clone := *email
	s.emails[email.ID] = &clone
	return nil
}

// GetEmailsForUser 返回收件箱，按发送时间降序。
func (s *Store) GetEmailsForUser(_ context.Context, address string) ([]domain.Email, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(e *domain.Email) bool {
		return e.RecipientEmail == address
	}), nil
}

// GetSentEmails 返回发件箱，按发送时间降序。
func (s *Store) GetSentEmails(_ context.Context, address string) ([]domain.Email, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(e *domain.Email) bool {
		return e.SenderEmail == address
	}), nil
}

// GetUnreadCount 返回未读邮件数。
func (s *Store) GetUnreadCount(_ context.Context, address string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, e := range s.emails {
		if e.RecipientEmail == address && !e.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkEmailAsRead 将邮件置为已读。不存在的 ID 静默成功。
func (s *Store) MarkEmailAsRead(_ context.Context, emailID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.emails[emailID]; ok {
		e.IsRead = true
	}
	return nil
}

// Health 内存存储总是健康。
func (s *Store) Health(_ context.Context) error { return nil }

// Close 无资源可释放。
func (s *Store) Close() {}

// collect 过滤并按 SentAt 降序排序，锁须由调用方持有。
func (s *Store) collect(match func(*domain.Email) bool) []domain.Email {
	out := make([]domain.Email, 0)
	for _, e := range s.emails {
		if match(e) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SentAt.After(out[j].SentAt)
	})
	return out
}
