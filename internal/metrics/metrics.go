// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviematch_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	InteractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_interactions_total",
			Help: "Stored interactions by reaction, replays excluded",
		},
		[]string{"reaction"},
	)

	MatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviematch_matches_total",
			Help: "Matches created",
		},
	)

	EmptyFeedsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviematch_feed_empty_total",
			Help: "Feed requests with no candidates left",
		},
	)

	// CandidatePoolTotal counts feed requests served from the redis pool
	// ("hit") versus those that fell back to the SQL shuffle ("miss").
	CandidatePoolTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_candidate_pool_total",
			Help: "Candidate pool usage",
		},
		[]string{"result"},
	)

	// PlatformsResolvedTotal splits backfilled movies into those with a
	// streaming offer and those recorded with the default platform.
	PlatformsResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_platforms_resolved_total",
			Help: "Movies whose platform was backfilled",
		},
		[]string{"result"},
	)

	ImportedMoviesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviematch_imported_movies_total",
			Help: "Movies upserted by the catalog importer",
		},
	)
)
