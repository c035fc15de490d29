package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "price_proxy_"

// Service constants
const (
	ServiceBatchPrices = "batch-prices"
	ServiceNativePrice = "native-price"
	ServiceTokens      = "tokens"
)

var (
	// Global Coingecko request counter (all services)
	// Cardinality: ~3 (success, error, rate_limited)
	CoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API across all services",
		},
		[]string{"status"},
	)

	// Service-specific Coingecko request counter
	ServiceCoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API per service",
		},
		[]string{"service", "status"},
	)

	// Retry attempts counter
	ServiceRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_retry_attempts_total",
			Help: "Total number of retry attempts per service",
		},
		[]string{"service"},
	)

	// Batch fetch duration per platform
	BatchDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "batch_fetch_duration_seconds",
			Help: "Time taken to complete a batch price fetch",
		},
		[]string{"platform"},
	)

	// Batch size gauge per platform
	BatchSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "batch_size",
			Help: "Number of addresses in the most recent batch per platform",
		},
		[]string{"platform"},
	)

	// Service cache size
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordServiceCoingeckoRequest records a service-specific Coingecko API request
func (mw *MetricsWriter) RecordServiceCoingeckoRequest(status string) {
	CoingeckoRequestsTotal.WithLabelValues(status).Inc()
	ServiceCoingeckoRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordRetryAttempt records a retry attempt
func (mw *MetricsWriter) RecordRetryAttempt() {
	ServiceRetryCounter.WithLabelValues(mw.serviceName).Inc()
}

// RecordBatchFetch records the duration and size of a batch price fetch
func (mw *MetricsWriter) RecordBatchFetch(platform string, size int, duration time.Duration) {
	BatchDurationHistogram.WithLabelValues(platform).Observe(duration.Seconds())
	BatchSizeGauge.WithLabelValues(platform).Set(float64(size))
	log.Printf("Metrics: %s batch for %s with %d addresses took %.2fs",
		mw.serviceName, platform, size, duration.Seconds())
}

// RecordCacheSize records the number of items in service cache
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// Implement IHttpStatusHandler interface for MetricsWriter
// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordServiceCoingeckoRequest(status)
}

// OnRetry records an HTTP retry attempt
func (mw *MetricsWriter) OnRetry() {
	mw.RecordRetryAttempt()
}
