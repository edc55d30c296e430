package domain

import "time"

// Email 表示一封站内邮件。
//
// SenderEmail/SenderName 是发送时刻的快照（按值存储），不引用 users 表；
// RecipientEmail 同样只是字符串，收件人不要求是注册用户。
type Email struct {
	ID             string    `json:"id"`
	SenderEmail    string    `json:"senderEmail"`
	SenderName     string    `json:"senderName"`
	RecipientEmail string    `json:"recipientEmail"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	IsRead         bool      `json:"isRead"`
	SentAt         time.Time `json:"sentAt"`
}
