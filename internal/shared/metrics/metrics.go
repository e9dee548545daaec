package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipes_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	recipesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_created_total",
			Help: "Total recipes appended to the collection",
		},
	)

	recipesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_rejected_total",
			Help: "Total recipe submissions rejected, by reason",
		},
		[]string{"reason"},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	collectionSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipes_collection_size",
			Help: "Number of recipes in the collection at the last load or write",
		},
	)
)

// IncRecipeCreated increments the created counter.
func IncRecipeCreated() {
	recipesCreatedTotal.Inc()
}

// IncRecipeRejected increments the rejection counter for reason.
func IncRecipeRejected(reason string) {
	recipesRejectedTotal.WithLabelValues(reason).Inc()
}

// IncRateLimited increments the rate limit reject counter.
func IncRateLimited() {
	rateLimitRejects.Inc()
}

// SetCollectionSize records the collection size.
func SetCollectionSize(n int) {
	collectionSize.Set(float64(n))
}

// Middleware records request count and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
