package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"moltmail/backend/internal/domain"
)

// ========== Email Repository ==========

// SaveEmail 插入新邮件，is_read 与 sent_at 由数据库默认值生成。
// 收件人不做存在性校验：emails 与 users 之间没有外键。
func (s *Store) SaveEmail(ctx context.Context, email *domain.Email) error {
	const q = `
		INSERT INTO emails (id, sender_email, sender_name, recipient_email, subject, body)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING is_read, sent_at
	`
	return s.pool.QueryRow(ctx, q,
		email.ID,
		email.SenderEmail,
		email.SenderName,
		email.RecipientEmail,
		email.Subject,
		email.Body,
	).Scan(&email.IsRead, &email.SentAt)
}

// GetEmailsForUser 返回收件人为该地址的全部邮件，按发送时间降序。
func (s *Store) GetEmailsForUser(ctx context.Context, address string) ([]domain.Email, error) {
	const q = `
		SELECT id, sender_email, sender_name, recipient_email, subject, body, is_read, sent_at
		FROM emails
		WHERE recipient_email = $1
		ORDER BY sent_at DESC
	`
	rows, err := s.pool.Query(ctx, q, address)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmails(rows)
}

// GetSentEmails 返回发件人为该地址的全部邮件，按发送时间降序。
func (s *Store) GetSentEmails(ctx context.Context, address string) ([]domain.Email, error) {
	const q = `
		SELECT id, sender_email, sender_name, recipient_email, subject, body, is_read, sent_at
		FROM emails
		WHERE sender_email = $1
		ORDER BY sent_at DESC
	`
	rows, err := s.pool.Query(ctx, q, address)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmails(rows)
}

// GetUnreadCount 返回该地址的未读邮件数。
func (s *Store) GetUnreadCount(ctx context.Context, address string) (int, error) {
	const q = `SELECT COUNT(*) FROM emails WHERE recipient_email = $1 AND is_read = FALSE`

	var count int
	if err := s.pool.QueryRow(ctx, q, address).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// MarkEmailAsRead 将邮件置为已读。
//
// 任何持有有效令牌的调用者都可以按 ID 标记任意邮件，不校验其是否为
// 收件人；对不存在的 ID 影响零行并静默成功。这是既有的对外行为，
// 改为校验所有权会改变可观测语义。
func (s *Store) MarkEmailAsRead(ctx context.Context, emailID string) error {
	const q = `UPDATE emails SET is_read = TRUE WHERE id = $1`
	_, err := s.pool.Exec(ctx, q, emailID)
	return err
}

// scanEmails 将查询结果逐列扫描为邮件实体切片。
func scanEmails(rows pgx.Rows) ([]domain.Email, error) {
	emails := make([]domain.Email, 0)
	for rows.Next() {
		var e domain.Email
		if err := rows.Scan(
			&e.ID,
			&e.SenderEmail,
			&e.SenderName,
			&e.RecipientEmail,
			&e.Subject,
			&e.Body,
			&e.IsRead,
			&e.SentAt,
		); err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}
