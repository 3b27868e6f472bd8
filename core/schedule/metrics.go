package schedule

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	generationDuration prometheus.Histogram
	requestsTotal      *prometheus.CounterVec
	schedulesFound     prometheus.Counter
	candidatesPruned   prometheus.Counter
)

// newCollectors creates new metric collectors.
func newCollectors() (prometheus.Histogram, *prometheus.CounterVec, prometheus.Counter, prometheus.Counter) {
	dur := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Time spent generating and ranking schedules per request",
			Buckets: prometheus.DefBuckets,
		},
	)
	req := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Number of generation requests by outcome",
		},
		[]string{"outcome"},
	)
	found := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "schedules_found_total",
			Help: "Number of schedules emitted across all requests",
		},
	)
	pruned := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "candidates_pruned_total",
			Help: "Number of sections removed by pre-search filters",
		},
	)
	return dur, req, found, pruned
}

func init() {
	generationDuration, requestsTotal, schedulesFound, candidatesPruned = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers generation metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(generationDuration, requestsTotal, schedulesFound, candidatesPruned)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	generationDuration, requestsTotal, schedulesFound, candidatesPruned = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
