package analysis

import (
	"fmt"

	"github.com/dd0wney/scholarnet/pkg/algorithms"
	"github.com/dd0wney/scholarnet/pkg/config"
	"github.com/dd0wney/scholarnet/pkg/graph"
	"github.com/dd0wney/scholarnet/pkg/logging"
)

// Detector assigns every node to a community. Louvain is the primary
// strategy; connected components serve as the fallback when Louvain is
// disabled or the graph has no edges to optimize over.
type Detector struct {
	disableLouvain bool
	logger         logging.Logger
}

// NewDetector creates a community detector
func NewDetector(cfg config.CommunityConfig, logger logging.Logger) *Detector {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Detector{
		disableLouvain: cfg.DisableLouvain,
		logger:         logger.With(logging.Component("detector")),
	}
}

// Detect partitions the graph and returns the assignment, the method used,
// and the modularity of the resulting partition. Every node appears in the
// partition, isolated nodes included.
func (d *Detector) Detect(g *graph.Graph) (map[string]int, string, float64, error) {
	var partition map[string]int
	method := MethodLouvain

	if d.disableLouvain || g.EdgeCount() == 0 {
		d.logger.Info("Using connected-components fallback",
			logging.Bool("louvain_disabled", d.disableLouvain),
			logging.Edges(g.EdgeCount()))
		partition = componentPartition(g)
		method = MethodComponents
	} else {
		partition = algorithms.Louvain(g)
	}

	q, err := algorithms.Modularity(g, partition)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to score partition: %w", err)
	}

	return partition, method, q, nil
}

// componentPartition labels each connected component as one community.
// Component discovery order is deterministic, so the labels are too.
func componentPartition(g *graph.Graph) map[string]int {
	partition := make(map[string]int, g.NodeCount())
	for i, component := range algorithms.ConnectedComponents(g) {
		for _, id := range component {
			partition[id] = i
		}
	}
	return partition
}
