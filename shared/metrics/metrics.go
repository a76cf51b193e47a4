package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics
	KeywordAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyword_analyses_total",
			Help: "Total number of keyword analyses",
		},
		[]string{"status"},
	)

	KeywordAnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "keyword_analysis_duration_seconds",
			Help:    "End-to-end keyword analysis duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SourceQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_queries_total",
			Help: "Total number of content source queries",
		},
		[]string{"status"},
	)

	WatchlistRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlist_runs_total",
			Help: "Total number of scheduled watchlist runs",
		},
		[]string{"status"},
	)

	// Application health metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Initialize metrics with default values
func Init(serviceName, version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}
