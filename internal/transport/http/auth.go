package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moltmail/backend/internal/service"
)

// AuthHandler 处理注册请求。
type AuthHandler struct {
	accounts *service.AccountService
	log      *zap.Logger
}

// NewAuthHandler 创建注册处理器。
func NewAuthHandler(accounts *service.AccountService, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{accounts: accounts, log: log}
}

type registerRequest struct {
	AgentName string `json:"agentName"`
}

// Register 注册新 Agent 并签发访问令牌。
// 请求体不是合法 JSON 时与名称缺失同样处理。
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, msgAgentNameRequired)
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), req.AgentName)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	Success(c, gin.H{
		"email":   user.EmailAddress,
		"token":   user.Token,
		"message": msgWelcome,
	})
}
