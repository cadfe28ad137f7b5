package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "serra_optimizations_started_total",
		Help: "Number of optimization jobs accepted.",
	})

	runsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "serra_optimizations_finished_total",
		Help: "Number of optimization jobs that reached a terminal state, by status.",
	}, []string{"status"})

	iterationsPerRun = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "serra_optimization_iterations",
		Help:    "Refinement iterations performed per completed run.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
