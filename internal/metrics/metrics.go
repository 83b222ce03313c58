// Package metrics holds the Prometheus collectors of the matching service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/saned/saned-backend/internal/domain"
)

var (
	MatchOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "saned_match_operation_duration_seconds",
			Help:    "Duration of match store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	MatchCandidatesScored = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "saned_match_candidates_scored",
			Help:    "Size of the candidate pool scored per potential-matches request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	MatchesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "saned_matches_created_total",
			Help: "Total number of match records created from scoring results",
		},
	)

	MatchPreferencesSet = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saned_match_preferences_set_total",
			Help: "Total number of preferences recorded, by preference",
		},
		[]string{"preference"},
	)
)

// Recorder is the metrics sink used by the match service.
type Recorder struct{}

// NewRecorder returns a Recorder writing to the default registry.
func NewRecorder() *Recorder { return &Recorder{} }

// ObserveOperation records the duration of a match store operation.
func (Recorder) ObserveOperation(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	MatchOperationDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}

// CandidatesScored records the size of a scored candidate pool.
func (Recorder) CandidatesScored(n int) {
	MatchCandidatesScored.Observe(float64(n))
}

// MatchCreated counts a newly inserted match record.
func (Recorder) MatchCreated() {
	MatchesCreated.Inc()
}

// PreferenceSet counts a recorded preference.
func (Recorder) PreferenceSet(p domain.MatchPreference) {
	MatchPreferencesSet.WithLabelValues(p.String()).Inc()
}
