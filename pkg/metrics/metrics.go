package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payflow_submissions_total",
		Help: "Total payment submissions",
	}, []string{"mode", "outcome"})

	StateTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payflow_state_transitions_total",
		Help: "Total presenter state transitions",
	}, []string{"from", "to"})

	LoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "payflow_context_load_duration_seconds",
		Help:    "Account and card load latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
)
