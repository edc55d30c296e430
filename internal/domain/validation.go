package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// 验证相关的错误定义
var (
	ErrAgentNameRequired = errors.New("agent name required")
	ErrAgentNameTooShort = errors.New("agent name too short")
	ErrAgentNameTooLong  = errors.New("agent name too long")
	ErrMissingMailFields = errors.New("to, subject and body required")
	ErrSubjectTooLong    = errors.New("subject too long")
	ErrBodyTooLong       = errors.New("body too long")
)

// 字段长度约束
const (
	MinAgentNameLength = 2
	MaxAgentNameLength = 50
	MaxSubjectLength   = 200
	MaxBodyLength      = 10000
)

// 地址派生时仅保留小写字母和数字
var addressStripRegex = regexp.MustCompile(`[^a-z0-9]`)

// ValidateAgentName 校验 Agent 名称并返回去除首尾空白后的形式。
//
// 长度区间为 [2, 50]，按字符（码点）而非字节计算，
// 多字节名称如 CJK 按可见字符数判定。
func ValidateAgentName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrAgentNameRequired
	}
	length := utf8.RuneCountInString(trimmed)
	if length < MinAgentNameLength {
		return "", ErrAgentNameTooShort
	}
	if length > MaxAgentNameLength {
		return "", ErrAgentNameTooLong
	}
	return trimmed, nil
}

// DeriveAddress 由 Agent 名称派生邮箱地址：
// 小写化、剔除 [a-z0-9] 以外的全部字符，再拼接固定域名后缀。
// 派生是确定性的，同一名称永远得到同一地址。
func DeriveAddress(agentName, domain string) string {
	local := addressStripRegex.ReplaceAllString(strings.ToLower(agentName), "")
	return local + "@" + domain
}

// ValidateMessage 校验发信请求的字段。
// 三个字段都必须非空，subject 不超过 200 字符，body 不超过 10000 字符，
// 长度同样按字符而非字节计算。
func ValidateMessage(to, subject, body string) error {
	if to == "" || subject == "" || body == "" {
		return ErrMissingMailFields
	}
	if utf8.RuneCountInString(subject) > MaxSubjectLength {
		return ErrSubjectTooLong
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}
