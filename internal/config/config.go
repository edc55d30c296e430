// Package config 从环境变量与 .env 文件加载服务配置。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServerConfig 定义 HTTP 服务器的监听配置参数
type ServerConfig struct {
	Host string // 监听地址，默认 "0.0.0.0"
	Port int    // 监听端口，默认 3002
}

// MailConfig 定义邮件域配置
type MailConfig struct {
	Domain string // 派生地址使用的邮件域，如 "moltmail.clawtism.com"
}

// CORSConfig 定义跨域资源共享 (CORS) 配置
type CORSConfig struct {
	AllowedOrigins []string // 允许的来源列表，"*" 表示允许所有来源
}

// LogConfig 定义日志系统配置
type LogConfig struct {
	Level       string // 日志级别: debug, info, warn, error
	Development bool   // 开发模式: 启用彩色输出和详细堆栈信息
	LogFile     string // 日志文件路径，留空仅输出到标准输出
}

// DatabaseConfig 定义 PostgreSQL 连接配置
type DatabaseConfig struct {
	DSN          string        // 连接字符串，留空时使用内存存储（开发模式）
	MaxConns     int           // 连接池上限，默认 20
	ConnIdleTime time.Duration // 空闲连接回收时间，默认 30s
	ConnTimeout  time.Duration // 建连超时，默认 2s
}

// Config 是系统核心配置的根结构体，包含所有子系统的配置
type Config struct {
	Server   ServerConfig   // HTTP 服务器配置
	Mail     MailConfig     // 邮件域配置
	CORS     CORSConfig     // 跨域配置
	Log      LogConfig      // 日志配置
	Database DatabaseConfig // 数据库配置
}

// Load 从环境变量和 .env 文件加载系统配置
//
// 配置加载优先级（从高到低）：
//  1. 系统环境变量（最高优先级）
//  2. .env 文件（如果存在）
//  3. 默认值
//
// 环境变量前缀: MOLTMAIL_
// 例如: MOLTMAIL_SERVER_PORT, MOLTMAIL_DATABASE_DSN
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetEnvPrefix("moltmail")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3002)
	v.SetDefault("mail.domain", "moltmail.clawtism.com")
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", "")
	v.SetDefault("database.dsn", "") // 默认为空，使用内存存储
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.conn_idle_time", "30s")
	v.SetDefault("database.conn_timeout", "2s")

	mailDomain := strings.ToLower(strings.TrimSpace(v.GetString("mail.domain")))
	if mailDomain == "" {
		return nil, fmt.Errorf("mail.domain must not be empty")
	}

	corsOrigins := parseList(v.GetString("cors.allowed_origins"))
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	maxConns := v.GetInt("database.max_conns")
	if maxConns <= 0 {
		maxConns = 20
	}

	connIdleTime, err := time.ParseDuration(v.GetString("database.conn_idle_time"))
	if err != nil {
		connIdleTime = 30 * time.Second
	}

	connTimeout, err := time.ParseDuration(v.GetString("database.conn_timeout"))
	if err != nil {
		connTimeout = 2 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Mail: MailConfig{
			Domain: mailDomain,
		},
		CORS: CORSConfig{
			AllowedOrigins: corsOrigins,
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
			LogFile:     v.GetString("log.file"),
		},
		Database: DatabaseConfig{
			DSN:          v.GetString("database.dsn"),
			MaxConns:     maxConns,
			ConnIdleTime: connIdleTime,
			ConnTimeout:  connTimeout,
		},
	}

	return cfg, nil
}

// parseList 将逗号分隔的字符串解析为字符串切片，去除空白项。
func parseList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// loadEnvFile 尝试加载 .env 文件，文件不存在时静默跳过。
// 已存在的环境变量优先级更高，不会被覆盖。
func loadEnvFile() {
	if err := godotenv.Load(".env"); err == nil {
		return
	}

	parentEnv := filepath.Join("..", ".env")
	if _, err := os.Stat(parentEnv); err == nil {
		_ = godotenv.Load(parentEnv)
	}
}
