package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage counters and latencies. Registered on the default
// registry so promhttp can serve them without extra wiring.
var (
	TranscriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "followup_transcriptions_total",
		Help: "Audio transcriptions attempted, by outcome.",
	}, []string{"outcome"})

	TranscriptCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "followup_transcript_cache_hits_total",
		Help: "Transcriptions served from the transcript cache.",
	})

	EmailsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "followup_emails_generated_total",
		Help: "Follow-up emails generated, by provider and outcome.",
	}, []string{"provider", "outcome"})

	EmailsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "followup_emails_sent_total",
		Help: "Follow-up emails handed to SMTP, by outcome.",
	}, []string{"outcome"})

	TasksSyncedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "followup_tasks_synced_total",
		Help: "Action items written to the Excel workbook.",
	})

	PipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "followup_pipeline_stage_duration_seconds",
		Help:    "Duration of pipeline stages.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"stage"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "followup_http_requests_total",
		Help: "HTTP requests served, by method, path and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "followup_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Outcome labels shared by the counters above.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
