package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	purchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coordctl",
			Subsystem: "purchase",
			Name:      "operations_total",
			Help:      "Settled purchase operations by outcome.",
		},
		[]string{"outcome"},
	)
	purchaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coordctl",
			Subsystem: "purchase",
			Name:      "duration_seconds",
			Help:      "Purchase operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	balanceReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coordctl",
			Subsystem: "balance",
			Name:      "reads_total",
			Help:      "Balance read operations by outcome.",
		},
		[]string{"outcome"},
	)
	balanceReadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coordctl",
			Subsystem: "balance",
			Name:      "read_duration_seconds",
			Help:      "Balance read duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coordctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total admin HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coordctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Admin HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			purchases, purchaseDuration,
			balanceReads, balanceReadDuration,
			httpRequests, httpDuration,
		)
	})
}

func RecordPurchase(outcome string, duration time.Duration) {
	RegisterMetrics()
	purchases.WithLabelValues(outcome).Inc()
	purchaseDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func RecordBalanceRead(outcome string, duration time.Duration) {
	RegisterMetrics()
	balanceReads.WithLabelValues(outcome).Inc()
	balanceReadDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
