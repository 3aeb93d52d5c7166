package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 按账本模块统计 HTTP 请求
type MetricsBuilder struct {
	durationVec *prometheus.HistogramVec
	counterVec  *prometheus.CounterVec
}

func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	durationVec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"module", "method", "path", "status_code"},
	)
	counterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"module", "method", "path", "status_code"},
	)
	reg.MustRegister(durationVec, counterVec)
	return &MetricsBuilder{
		durationVec: durationVec,
		counterVec:  counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没匹配上路由的统一归到一起，避免标签爆炸
			path = "unmatched"
		}
		labels := []string{moduleOf(path), ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		a.durationVec.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(labels...).Inc()
	}
}

// moduleOf /badge/transfer 属于 badge
func moduleOf(path string) string {
	seg := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
	if seg == "" {
		return "unknown"
	}
	return seg
}
