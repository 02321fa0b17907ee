package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrimind_page_renders_total",
			Help: "Total full dashboard page renders",
		},
		[]string{"page", "status"},
	)

	PageRenderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrimind_page_render_latency_seconds",
			Help:    "Dashboard page render latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"page"},
	)

	SelectionChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrimind_selection_changes_total",
			Help: "Total page selection changes by control and outcome",
		},
		[]string{"page", "control", "result"},
	)

	ShellTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrimind_shell_transitions_total",
			Help: "Total navigation shell transitions",
		},
		[]string{"transition"},
	)

	FragmentPatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrimind_fragment_patches_total",
			Help: "Total element fragments patched over SSE",
		},
		[]string{"fragment"},
	)

	OGImageCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrimind_og_image_cache_total",
			Help: "Preview image cache lookups",
		},
		[]string{"result"},
	)
)
