// Package idgen 生成系统内使用的不透明标识符与访问令牌。
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// 标识符与令牌的前缀，便于在日志中一眼区分两类值。
const (
	IDPrefix    = "mm_"
	TokenPrefix = "token_"
)

// 随机字节数：标识符 128 位，令牌 256 位。
const (
	idBytes    = 16
	tokenBytes = 32
)

// NewID 生成一个新的邮件/用户标识符（mm_ + 32 位小写十六进制）。
func NewID() (string, error) {
	return generate(IDPrefix, idBytes)
}

// NewToken 生成一个新的访问令牌（token_ + 64 位小写十六进制）。
func NewToken() (string, error) {
	return generate(TokenPrefix, tokenBytes)
}

// generate 从加密随机源读取 n 字节并编码为带前缀的十六进制字符串。
// 随机源耗尽属于不可恢复错误，由调用方决定终止进程。
func generate(prefix string, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return prefix + hex.EncodeToString(buf), nil
}
