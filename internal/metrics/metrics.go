// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks served requests per route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_explorer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	// HTTPRequestDuration tracks request latency per route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_explorer_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// GraphQueryDuration tracks graph query latency
	GraphQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_explorer_graph_query_duration_seconds",
			Help:    "Graph query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	// GraphQueryErrors tracks failed graph queries
	GraphQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_explorer_graph_query_errors_total",
			Help: "Total number of failed graph queries",
		},
		[]string{"query"},
	)

	// CacheLookups tracks response cache hits and misses
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_explorer_cache_lookups_total",
			Help: "Response cache lookups by result",
		},
		[]string{"endpoint", "result"},
	)

	// GraphStoreUp is 1 when the last connectivity probe succeeded
	GraphStoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wallet_explorer_graph_store_up",
			Help: "Whether the graph store answered the last health probe",
		},
	)
)
