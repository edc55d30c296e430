package domain

import "time"

// User 表示一名已注册的 Agent 账户。
//
// Token 是唯一的认证凭证，创建后不轮换；EmailAddress 由 AgentName
// 规范化派生，二者创建后均不可变更。
type User struct {
	ID           string     `json:"id"`
	AgentName    string     `json:"agentName"`
	EmailAddress string     `json:"emailAddress"`
	Token        string     `json:"-"` // 不随实体序列化，仅在注册响应中显式返回
	CreatedAt    time.Time  `json:"createdAt"`
	LastActive   *time.Time `json:"lastActive,omitempty"`
}
