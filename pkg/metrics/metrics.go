// Package metrics provides Prometheus instrumentation for analysis runs.
package metrics

import (
	"time"
)

// RecordAnalysis records the outcome and duration of an analysis run
func (r *Registry) RecordAnalysis(status string, duration time.Duration) {
	r.AnalysisRunsTotal.WithLabelValues(status).Inc()
	r.AnalysisDuration.Observe(duration.Seconds())
}

// RecordGraph records the size of a freshly built graph
func (r *Registry) RecordGraph(kind string, nodes, edges int) {
	r.GraphNodes.WithLabelValues(kind).Set(float64(nodes))
	r.GraphEdges.WithLabelValues(kind).Set(float64(edges))
}

// RecordPartition records the community structure found in one graph
func (r *Registry) RecordPartition(kind string, communities int, modularity float64) {
	r.CommunitiesFound.WithLabelValues(kind).Set(float64(communities))
	r.Modularity.WithLabelValues(kind).Set(modularity)
}

// RecordCentralitySkipped records a run that hit the centrality size ceiling
func (r *Registry) RecordCentralitySkipped() {
	r.CentralitySkipped.Inc()
}

// RecordDetectorFallback records a run that fell back to connected components
func (r *Registry) RecordDetectorFallback() {
	r.DetectorFallbacks.Inc()
}

// RecordEigenvectorDegradation records a non-converged eigenvector run
func (r *Registry) RecordEigenvectorDegradation() {
	r.EigenvectorDegrade.Inc()
}

// RecordExport records a graph export attempt
func (r *Registry) RecordExport(format, status string) {
	r.ExportsTotal.WithLabelValues(format, status).Inc()
	if status == "error" {
		r.ExportFailures.Inc()
	}
}
