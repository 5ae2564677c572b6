// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Matching engine metrics
	MatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attribution_matches_total",
			Help: "Total number of processed events by match type and attribution status",
		},
		[]string{"match_type", "status"},
	)

	ProcessDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "attribution_process_duration_seconds",
			Help:    "Duration of processing one attribution event in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ProcessErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "attribution_process_errors_total",
			Help: "Total number of events whose processing returned an error",
		},
	)

	UnconfiguredClients = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "attribution_unconfigured_client_events_total",
			Help: "Total number of events received for clients without a config",
		},
	)

	// Lock metrics
	LockWaitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "attribution_lock_wait_seconds",
			Help:    "Time spent waiting for a per-domain lock in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Queue metrics
	EventsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attribution_events_enqueued_total",
			Help: "Total number of events received for processing",
		},
		[]string{"source", "result"},
	)

	BatchEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attribution_batch_events_total",
			Help: "Total number of events finished by the batch runner",
		},
		[]string{"result"},
	)

	QueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "attribution_queue_events",
			Help: "Number of queued events by status",
		},
		[]string{"status"},
	)

	// Review metrics
	ReviewTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attribution_review_transitions_total",
			Help: "Total number of review status transitions by target status; automatic confirmations count as EXPIRED",
		},
		[]string{"to"},
	)

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attribution_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "code"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "attribution_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// NATS intake metrics
	NATSMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attribution_nats_messages_total",
			Help: "Total number of messages received on the intake subject by result",
		},
		[]string{"result"},
	)
)
