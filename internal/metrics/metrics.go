// Package metrics provides Prometheus instrumentation for the lost & found
// service: counters for reports and matches and a histogram over match scores.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ItemsReported counts reports filed, labeled by type: "lost" or "found".
	ItemsReported = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_items_reported_total",
		Help: "Total number of item reports filed",
	}, []string{"type"})

	// MatchesCreated counts matches persisted by discovery.
	MatchesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_matches_created_total",
		Help: "Total number of matches persisted by discovery",
	})

	// MatchScores records the score distribution of persisted matches.
	MatchScores = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "lostfound_match_score",
		Help:    "Score distribution of persisted matches",
		Buckets: []float64{30, 40, 50, 60, 70, 80, 90, 100},
	})

	// MatchStatusUpdates counts confirm/reject decisions, labeled by status.
	MatchStatusUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_match_status_updates_total",
		Help: "Total number of match status updates",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(
		ItemsReported,
		MatchesCreated,
		MatchScores,
		MatchStatusUpdates,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
