// Package metrics exposes Prometheus instrumentation for the bridge.
// The dashboard server mounts the handler at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpdatesTotal counts sensing updates by source ("refined" or "frame").
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "focus_bridge_updates_total",
			Help: "Number of sensing updates processed, by source.",
		},
		[]string{"source"},
	)

	// ClassificationsTotal counts classifier outputs by state name.
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "focus_bridge_classifications_total",
			Help: "Number of classifications produced, by attention state.",
		},
		[]string{"state"},
	)

	// FocusScore is the most recent focus score.
	FocusScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "focus_bridge_focus_score",
			Help: "Focus score of the most recent classification (0.0-1.0).",
		},
	)
)
