// Package service 封装注册、认证与收发邮件的业务逻辑。
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"moltmail/backend/internal/domain"
	"moltmail/backend/internal/idgen"
	"moltmail/backend/internal/monitoring"
	"moltmail/backend/internal/storage"
)

var (
	ErrAgentNameTaken = errors.New("agent name already taken")
	ErrInvalidToken   = errors.New("invalid token")
)

// AccountService 封装 Agent 账户相关业务操作。
type AccountService struct {
	store      storage.Store
	mailDomain string
	metrics    *monitoring.Metrics
	log        *zap.Logger
}

// NewAccountService 创建账户业务服务。
func NewAccountService(store storage.Store, mailDomain string, metrics *monitoring.Metrics, log *zap.Logger) *AccountService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountService{
		store:      store,
		mailDomain: mailDomain,
		metrics:    metrics,
		log:        log,
	}
}

// Register 注册新 Agent：校验名称、派生地址、生成凭证并落库。
//
// 先做存在性预检快速失败，再依赖数据库唯一约束兜底并发注册；
// 约束冲突同样映射为 ErrAgentNameTaken。
func (s *AccountService) Register(ctx context.Context, agentName string) (*domain.User, error) {
	name, err := domain.ValidateAgentName(agentName)
	if err != nil {
		return nil, err
	}

	address := domain.DeriveAddress(name, s.mailDomain)

	exists, err := s.store.EmailExists(ctx, address)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAgentNameTaken
	}

	id, err := idgen.NewID()
	if err != nil {
		return nil, err
	}
	token, err := idgen.NewToken()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           id,
		AgentName:    name,
		EmailAddress: address,
		Token:        token,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailAddressTaken) {
			return nil, ErrAgentNameTaken
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.UsersRegistered.Inc()
	}
	s.log.Info("agent registered",
		zap.String("user_id", user.ID),
		zap.String("email_address", user.EmailAddress),
	)
	return user, nil
}

// Authenticate 根据 Bearer 令牌解析用户，令牌无效返回 ErrInvalidToken。
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.store.GetUserByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
