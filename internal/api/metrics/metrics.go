// Package metrics defines all custom Prometheus metrics for the brief
// service. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "briefservice"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// BriefsCreatedTotal counts brief creation requests that reached the
// generation adapter.
// Label:
//   - result: "ok" or "error"
var BriefsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "briefs_created_total",
		Help:      "Total number of brief creation attempts, by result.",
	},
	[]string{"result"},
)

// GenerationDuration measures how long one generation round-trip takes,
// from request to persisted file.
var GenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of brief generation from request to persistence.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	},
)
