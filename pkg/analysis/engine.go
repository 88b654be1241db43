package analysis

import (
	"github.com/dd0wney/scholarnet/pkg/algorithms"
	"github.com/dd0wney/scholarnet/pkg/config"
	"github.com/dd0wney/scholarnet/pkg/graph"
	"github.com/dd0wney/scholarnet/pkg/logging"
)

// centralityTopN caps the per-measure leaderboards in the report
const centralityTopN = 10

// Engine computes structural metrics for a graph. Shortest-path and spectral
// centralities are quadratic and worse, so graphs above CentralityMaxNodes
// get degree centrality and the cheap aggregates only.
type Engine struct {
	cfg    config.MetricsConfig
	logger logging.Logger
}

// NewEngine creates a metrics engine
func NewEngine(cfg config.MetricsConfig, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Engine{cfg: cfg, logger: logger.With(logging.Component("engine"))}
}

// Compute calculates metrics for the graph. Node, edge, degree, component,
// and clustering aggregates are always present, and so is degree centrality,
// which stays cheap at any size. The shortest-path and spectral measures are
// only filled in below the configured node ceiling; CentralityComputed
// reports whether they ran.
func (e *Engine) Compute(g *graph.Graph, kind string) Metrics {
	m := Metrics{
		Nodes:   g.NodeCount(),
		Edges:   g.EdgeCount(),
		Density: g.Density(),
	}

	maxDegree := -1
	minDegree := -1
	totalDegree := 0
	for _, id := range g.NodeIDs() {
		d := g.Degree(id)
		totalDegree += d
		// Sorted iteration makes the tie-break alphabetical
		if d > maxDegree {
			maxDegree = d
			m.MaxDegreeNode = id
		}
		if minDegree == -1 || d < minDegree {
			minDegree = d
		}
	}
	if m.Nodes > 0 {
		m.MaxDegree = maxDegree
		m.MinDegree = minDegree
		m.AvgDegree = float64(totalDegree) / float64(m.Nodes)
	}

	components := algorithms.ConnectedComponents(g)
	m.Components = len(components)
	for _, c := range components {
		if len(c) > m.LargestComponent {
			m.LargestComponent = len(c)
		}
	}

	if m.Nodes == 0 {
		return m
	}

	core := g.Subgraph(algorithms.LargestComponent(g))
	if m.LargestComponent > 1 {
		m.AvgClustering = algorithms.AverageClusteringCoefficient(core)
	}

	degree := algorithms.DegreeCentrality(g)
	m.Centrality = &Centrality{
		Degree:    degree,
		TopDegree: algorithms.TopK(degree, centralityTopN),
	}

	if m.Nodes > e.cfg.CentralityMaxNodes {
		e.logger.Warn("Skipping shortest-path and spectral centrality",
			logging.String("graph", kind),
			logging.Nodes(m.Nodes),
			logging.Int("ceiling", e.cfg.CentralityMaxNodes))
		return m
	}

	e.computeCoreCentrality(core, kind, m.Centrality)
	m.CentralityComputed = true
	return m
}

// computeCoreCentrality fills in the expensive measures on the largest
// connected component, so nodes outside it carry no score rather than zero.
func (e *Engine) computeCoreCentrality(core *graph.Graph, kind string, c *Centrality) {
	c.Betweenness = algorithms.BetweennessCentrality(core)
	c.Closeness = algorithms.ClosenessCentrality(core)

	eigen, converged := algorithms.EigenvectorCentrality(core,
		e.cfg.EigenvectorIterations, e.cfg.EigenvectorTolerance)
	if converged {
		c.Eigenvector = eigen
	} else {
		e.logger.Warn("Eigenvector centrality did not converge, using degree",
			logging.String("graph", kind),
			logging.Int("iterations", e.cfg.EigenvectorIterations))
		c.Eigenvector = make(map[string]float64, len(eigen))
		for id := range eigen {
			c.Eigenvector[id] = c.Degree[id]
		}
		c.EigenvectorDegraded = true
	}

	c.TopBetweenness = algorithms.TopK(c.Betweenness, centralityTopN)
	c.TopCloseness = algorithms.TopK(c.Closeness, centralityTopN)
	c.TopEigenvector = algorithms.TopK(c.Eigenvector, centralityTopN)
}
