package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moltmail/backend/internal/middleware"
	"moltmail/backend/internal/service"
)

// EmailHandler 处理收件箱、发件箱与投递请求。
type EmailHandler struct {
	mail *service.MailService
	log  *zap.Logger
}

// NewEmailHandler 创建邮件处理器。
func NewEmailHandler(mail *service.MailService, log *zap.Logger) *EmailHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailHandler{mail: mail, log: log}
}

// Inbox 返回当前用户收到的全部邮件与未读计数。
func (h *EmailHandler) Inbox(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		Fail(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	inbox, err := h.mail.GetInbox(c.Request.Context(), user)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	Success(c, gin.H{
		"emails":       inbox.Emails,
		"unreadCount":  inbox.UnreadCount,
		"emailAddress": user.EmailAddress,
	})
}

type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Send 以当前用户身份投递一封邮件。
// 请求体不是合法 JSON 时按缺字段处理。
func (h *EmailHandler) Send(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		Fail(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, msgMissingMailFields)
		return
	}

	email, err := h.mail.Send(c.Request.Context(), user, req.To, req.Subject, req.Body)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	Success(c, gin.H{
		"message": msgEmailSent,
		"email":   email,
	})
}

// MarkRead 按 ID 将邮件标记为已读。
// 只要通过认证即返回成功，不校验邮件归属与存在性。
func (h *EmailHandler) MarkRead(c *gin.Context) {
	if err := h.mail.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	Success(c, gin.H{})
}

// Sent 返回当前用户发出的全部邮件。
func (h *EmailHandler) Sent(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		Fail(c, http.StatusInternalServerError, msgInternalError)
		return
	}

	emails, err := h.mail.GetSent(c.Request.Context(), user)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	Success(c, gin.H{
		"emails":       emails,
		"emailAddress": user.EmailAddress,
	})
}
