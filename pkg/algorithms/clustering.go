package algorithms

import (
	"github.com/dd0wney/scholarnet/pkg/graph"
)

// ClusteringCoefficient computes the local clustering coefficient for all
// nodes. Measures how close a node's neighbors are to being a complete
// graph: triangles through the node divided by the possible neighbor pairs.
// Nodes with fewer than two neighbors score 0.
func ClusteringCoefficient(g *graph.Graph) map[string]float64 {
	coefficients := make(map[string]float64, g.NodeCount())

	for _, id := range g.NodeIDs() {
		neighbors := g.Neighbors(id)
		k := len(neighbors)
		if k < 2 {
			coefficients[id] = 0.0
			continue
		}

		triangles := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdge(neighbors[i], neighbors[j]) {
					triangles++
				}
			}
		}

		possible := k * (k - 1) / 2
		coefficients[id] = float64(triangles) / float64(possible)
	}

	return coefficients
}

// AverageClusteringCoefficient computes the mean local clustering
// coefficient over all nodes, 0 for an empty graph.
func AverageClusteringCoefficient(g *graph.Graph) float64 {
	coefficients := ClusteringCoefficient(g)
	if len(coefficients) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, c := range coefficients {
		sum += c
	}
	return sum / float64(len(coefficients))
}
