package algorithms

import (
	"math"

	"github.com/dd0wney/scholarnet/pkg/graph"
)

const (
	// DefaultEigenvectorMaxIterations caps the power iteration
	DefaultEigenvectorMaxIterations = 100
	// DefaultEigenvectorTolerance is the per-node convergence tolerance
	DefaultEigenvectorTolerance = 1e-6
)

// EigenvectorCentrality computes eigenvector centrality via power iteration
// on the adjacency matrix, normalised to unit Euclidean norm. The boolean
// result reports convergence: when the iteration does not converge within
// maxIterations the returned scores are the last iterate and the caller is
// expected to degrade to degree centrality instead of failing.
func EigenvectorCentrality(g *graph.Graph, maxIterations int, tolerance float64) (map[string]float64, bool) {
	nodeIDs := g.NodeIDs()
	n := len(nodeIDs)
	if n == 0 {
		return map[string]float64{}, true
	}

	if maxIterations <= 0 {
		maxIterations = DefaultEigenvectorMaxIterations
	}
	if tolerance <= 0 {
		tolerance = DefaultEigenvectorTolerance
	}

	x := make(map[string]float64, n)
	for _, id := range nodeIDs {
		x[id] = 1.0 / float64(n)
	}

	for iter := 0; iter < maxIterations; iter++ {
		// x' = x + A·x; keeping the previous iterate damps oscillation on
		// bipartite components
		next := make(map[string]float64, n)
		for _, id := range nodeIDs {
			next[id] = x[id]
			for _, nb := range g.Neighbors(id) {
				next[id] += x[nb]
			}
		}

		norm := 0.0
		for _, v := range next {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}
		for id := range next {
			next[id] /= norm
		}

		diff := 0.0
		for _, id := range nodeIDs {
			diff += math.Abs(next[id] - x[id])
		}
		x = next

		if diff < float64(n)*tolerance {
			return x, true
		}
	}

	return x, false
}
