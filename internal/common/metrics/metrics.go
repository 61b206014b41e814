// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_generated_total",
			Help: "Total number of benchmark reports generated",
		},
		[]string{"outcome"},
	)

	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_render_duration_seconds",
			Help:    "Duration of the headless-browser PDF render step",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
		},
	)

	// BenchmarkFallbackLookups counts survey values that missed the lookup
	// tables and fell back to a default bucket. A rising rate means the
	// survey added enum values the mappings do not know about.
	BenchmarkFallbackLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchmark_fallback_lookups_total",
			Help: "Survey values resolved via fallback buckets",
		},
		[]string{"field"},
	)
)
