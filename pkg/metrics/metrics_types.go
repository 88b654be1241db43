package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Analysis metrics
	AnalysisRunsTotal  *prometheus.CounterVec
	AnalysisDuration   prometheus.Histogram
	GraphNodes         *prometheus.GaugeVec
	GraphEdges         *prometheus.GaugeVec
	CommunitiesFound   *prometheus.GaugeVec
	Modularity         *prometheus.GaugeVec
	CentralitySkipped  prometheus.Counter
	DetectorFallbacks  prometheus.Counter
	EigenvectorDegrade prometheus.Counter

	// Export metrics
	ExportsTotal   *prometheus.CounterVec
	ExportFailures prometheus.Counter

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initAnalysisMetrics()
	r.initExportMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
