package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentcard_renders_total",
			Help: "Card renders by template, side and outcome",
		},
		[]string{"template", "side", "outcome"},
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agentcard_render_duration_seconds",
			Help:    "Time from render start to ready",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"template"},
	)

	RendersInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "agentcard_renders_in_flight",
			Help: "Renders currently in the rendering state",
		},
	)

	AssetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentcard_asset_loads_total",
			Help: "Background and photo loads by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agentcard_exports_total",
			Help: "Exported card artifacts by format",
		},
		[]string{"format"},
	)
)

// Outcome labels.
const (
	OutcomeReady      = "ready"
	OutcomeFailed     = "failed"
	OutcomeSuperseded = "superseded"
	OutcomeHit        = "hit"
	OutcomeMiss       = "miss"
	OutcomeCached     = "cached"
)
