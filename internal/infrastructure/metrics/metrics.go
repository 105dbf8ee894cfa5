package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Generation metrics
	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	EntriesGenerated   prometheus.Counter
	ReconcilingEntries prometheus.Counter
	GenerationsReused  prometheus.Counter
	GenerationErrors   *prometheus.CounterVec

	// Validation metrics
	ValidationsTotal   prometheus.Counter
	ValidationFailures prometheus.Counter
	UnbalancedEntities prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Generation metrics
		GenerationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_generations_total",
				Help: "Total ledger generation runs by outcome",
			},
			[]string{"outcome"},
		),
		GenerationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_generation_duration_seconds",
			Help:    "Duration of ledger generation runs",
			Buckets: prometheus.DefBuckets,
		}),
		EntriesGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_entries_generated_total",
			Help: "Total ledger entries generated",
		}),
		ReconcilingEntries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_reconciling_entries_total",
			Help: "Total exchange-rate reconciling entries synthesized",
		}),
		GenerationsReused: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_generations_reused_total",
			Help: "Generation requests satisfied by existing balanced records",
		}),
		GenerationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_generation_errors_total",
				Help: "Total generation failures by error type",
			},
			[]string{"error_type"},
		),

		// Validation metrics
		ValidationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_validations_total",
			Help: "Total ledger validation runs",
		}),
		ValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_validation_failures_total",
			Help: "Validation runs that found an unbalanced charge",
		}),
		UnbalancedEntities: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_unbalanced_entities",
			Help:    "Unbalanced entities found per validation run",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
