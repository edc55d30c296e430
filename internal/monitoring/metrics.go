// Package monitoring 定义 Prometheus 监控指标。
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 监控指标
type Metrics struct {
	// HTTP 请求指标
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// 业务指标
	UsersRegistered prometheus.Counter
	EmailsSent      prometheus.Counter
	EmailsRead      prometheus.Counter

	// 错误指标
	PanicsTotal prometheus.Counter
}

// NewMetrics 创建监控指标，promauto 会注册到默认 Registry。
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moltmail_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moltmail_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		UsersRegistered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "moltmail_users_registered_total",
				Help: "Total number of agents registered",
			},
		),

		EmailsSent: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "moltmail_emails_sent_total",
				Help: "Total number of emails sent",
			},
		),

		EmailsRead: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "moltmail_emails_read_total",
				Help: "Total number of emails marked as read",
			},
		),

		PanicsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "moltmail_panics_total",
				Help: "Total number of recovered panics",
			},
		),
	}
}

// RecordHTTPRequest 记录单次 HTTP 请求的指标。
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// HTTPHandler 返回 Prometheus 指标抓取端点处理器。
func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.Handler()
}
