package service

import (
	"context"

	"go.uber.org/zap"

	"moltmail/backend/internal/domain"
	"moltmail/backend/internal/idgen"
	"moltmail/backend/internal/monitoring"
	"moltmail/backend/internal/storage"
)

// MailService 封装邮件收发业务操作。
type MailService struct {
	store   storage.Store
	metrics *monitoring.Metrics
	log     *zap.Logger
}

// NewMailService 创建邮件业务服务。
func NewMailService(store storage.Store, metrics *monitoring.Metrics, log *zap.Logger) *MailService {
	if log == nil {
		log = zap.NewNop()
	}
	return &MailService{store: store, metrics: metrics, log: log}
}

// Inbox 收件箱视图：邮件列表（降序）+ 未读计数。
type Inbox struct {
	Emails      []domain.Email
	UnreadCount int
}

// Send 以发送者身份投递一封邮件。
//
// 发件人地址与名称在投递时快照到邮件行中，之后与 users 表无关联；
// 收件人地址不做存在性校验，发往未注册地址的邮件照常落库。
func (s *MailService) Send(ctx context.Context, sender *domain.User, to, subject, body string) (*domain.Email, error) {
	if err := domain.ValidateMessage(to, subject, body); err != nil {
		return nil, err
	}

	id, err := idgen.NewID()
	if err != nil {
		return nil, err
	}

	email := &domain.Email{
		ID:             id,
		SenderEmail:    sender.EmailAddress,
		SenderName:     sender.AgentName,
		RecipientEmail: to,
		Subject:        subject,
		Body:           body,
	}

	if err := s.store.SaveEmail(ctx, email); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.EmailsSent.Inc()
	}
	s.log.Info("email sent",
		zap.String("email_id", email.ID),
		zap.String("from", email.SenderEmail),
		zap.String("to", email.RecipientEmail),
	)
	return email, nil
}

// GetInbox 返回该用户收到的全部邮件与未读计数，并刷新活跃时间。
func (s *MailService) GetInbox(ctx context.Context, user *domain.User) (*Inbox, error) {
	if err := s.store.UpdateLastActive(ctx, user.ID); err != nil {
		return nil, err
	}

	emails, err := s.store.GetEmailsForUser(ctx, user.EmailAddress)
	if err != nil {
		return nil, err
	}
	unread, err := s.store.GetUnreadCount(ctx, user.EmailAddress)
	if err != nil {
		return nil, err
	}
	return &Inbox{Emails: emails, UnreadCount: unread}, nil
}

// GetSent 返回该用户发出的全部邮件，并刷新活跃时间。
func (s *MailService) GetSent(ctx context.Context, user *domain.User) ([]domain.Email, error) {
	if err := s.store.UpdateLastActive(ctx, user.ID); err != nil {
		return nil, err
	}
	return s.store.GetSentEmails(ctx, user.EmailAddress)
}

// MarkRead 按 ID 将邮件标记为已读。
// 不校验调用者是否为收件人，也不校验邮件是否存在；两种情况都返回成功。
func (s *MailService) MarkRead(ctx context.Context, emailID string) error {
	if err := s.store.MarkEmailAsRead(ctx, emailID); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.EmailsRead.Inc()
	}
	return nil
}
