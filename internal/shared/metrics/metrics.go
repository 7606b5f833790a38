package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lt_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lt_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ScanOutcomes counts QR scans by result: check_in, check_out or an error code.
	ScanOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lt_attendance_scans_total",
		Help: "QR attendance scans by outcome.",
	}, []string{"outcome"})

	ReportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lt_salary_report_duration_seconds",
		Help:    "Time spent generating a salary report.",
		Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})

	ExportJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lt_salary_report_exports_total",
		Help: "Asynchronous salary report exports by final status.",
	}, []string{"status"})
)

// GinMiddleware records request count and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
