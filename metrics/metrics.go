// Package metrics registers the renderer's Prometheus instrumentation
// on a caller-supplied registry, never the global default, so
// embedding the renderer in another process never causes duplicate
// registration or global-state surprises.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the renderer's counters and histograms. Construct one
// per embedding application with New, not per render.
type Metrics struct {
	RenderDuration   prometheus.Histogram
	AStarRetries     prometheus.Counter
	UnroutableEdges  prometheus.Counter
}

// New creates and registers the renderer's metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "asciigraph_render_duration_seconds",
			Help:    "Time to render one flowchart, in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		AStarRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asciigraph_astar_retries_total",
			Help: "Number of strict A* retry attempts across all routed edges.",
		}),
		UnroutableEdges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "asciigraph_unroutable_edges_total",
			Help: "Number of edges that stayed unrouted after every layout margin retry.",
		}),
	}
	reg.MustRegister(m.RenderDuration, m.AStarRetries, m.UnroutableEdges)
	return m
}
