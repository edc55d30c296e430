package httptransport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moltmail/backend/internal/domain"
	"moltmail/backend/internal/service"
)

// 对外错误文案，客户端依赖这些字符串做展示。
const (
	msgAgentNameRequired = "Agent name is required"
	msgAgentNameTooShort = "Agent name must be at least 2 characters"
	msgAgentNameTooLong  = "Agent name must be less than 50 characters"
	msgAgentNameTaken    = "This agent name is already taken"
	msgMissingMailFields = "to, subject, and body are required"
	msgSubjectTooLong    = "Subject must be less than 200 characters"
	msgBodyTooLong       = "Body must be less than 10000 characters"
	msgInternalError     = "Internal server error"
	msgWelcome           = "Welcome to MoltMail!"
	msgEmailSent         = "Email sent"
)

// writeError 将业务错误翻译为 HTTP 状态码与对外文案。
// 未识别的错误一律 500，并记录原始错误。
func writeError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrAgentNameRequired):
		Fail(c, http.StatusBadRequest, msgAgentNameRequired)
	case errors.Is(err, domain.ErrAgentNameTooShort):
		Fail(c, http.StatusBadRequest, msgAgentNameTooShort)
	case errors.Is(err, domain.ErrAgentNameTooLong):
		Fail(c, http.StatusBadRequest, msgAgentNameTooLong)
	case errors.Is(err, service.ErrAgentNameTaken):
		Fail(c, http.StatusConflict, msgAgentNameTaken)
	case errors.Is(err, domain.ErrMissingMailFields):
		Fail(c, http.StatusBadRequest, msgMissingMailFields)
	case errors.Is(err, domain.ErrSubjectTooLong):
		Fail(c, http.StatusBadRequest, msgSubjectTooLong)
	case errors.Is(err, domain.ErrBodyTooLong):
		Fail(c, http.StatusBadRequest, msgBodyTooLong)
	default:
		log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		Fail(c, http.StatusInternalServerError, msgInternalError)
	}
}
