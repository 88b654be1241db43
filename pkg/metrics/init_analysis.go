package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysisRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scholarnet_analysis_runs_total",
			Help: "Total number of network analysis runs",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scholarnet_analysis_duration_seconds",
			Help:    "Network analysis run duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scholarnet_graph_nodes",
			Help: "Number of nodes in the most recently built graph",
		},
		[]string{"graph"},
	)

	r.GraphEdges = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scholarnet_graph_edges",
			Help: "Number of edges in the most recently built graph",
		},
		[]string{"graph"},
	)

	r.CommunitiesFound = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scholarnet_communities_found",
			Help: "Number of communities in the most recent partition",
		},
		[]string{"graph"},
	)

	r.Modularity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scholarnet_modularity",
			Help: "Modularity of the most recent partition",
		},
		[]string{"graph"},
	)

	r.CentralitySkipped = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "scholarnet_centrality_skipped_total",
			Help: "Runs where expensive centrality was skipped by the size ceiling",
		},
	)

	r.DetectorFallbacks = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "scholarnet_detector_fallbacks_total",
			Help: "Community detection runs that used the connected-components fallback",
		},
	)

	r.EigenvectorDegrade = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "scholarnet_eigenvector_degradations_total",
			Help: "Eigenvector centrality runs degraded to degree centrality",
		},
	)
}

func (r *Registry) initExportMetrics() {
	r.ExportsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scholarnet_exports_total",
			Help: "Total number of graph export attempts",
		},
		[]string{"format", "status"},
	)

	r.ExportFailures = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "scholarnet_export_failures_total",
			Help: "Graph exports that failed",
		},
	)
}
