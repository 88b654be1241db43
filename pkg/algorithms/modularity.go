package algorithms

import (
	"fmt"

	"github.com/dd0wney/scholarnet/pkg/graph"
)

// Modularity computes the modularity Q of a partition of the graph:
// Q = (1/2m)·Σ[A_ij − k_i·k_j/2m]·δ(c_i,c_j), using edge weights and
// weighted degrees. The partition must assign a community to every node in
// the graph; computing Q over a partial partition is undefined and is
// rejected rather than silently miscomputed. An edgeless graph has Q = 0.
func Modularity(g *graph.Graph, partition map[string]int) (float64, error) {
	for _, id := range g.NodeIDs() {
		if _, ok := partition[id]; !ok {
			return 0, fmt.Errorf("partition omits node %q", id)
		}
	}

	m := float64(g.TotalWeight())
	if m == 0 {
		return 0.0, nil
	}
	m2 := 2.0 * m

	// Per-community intra-community weight (each endpoint once, so doubled)
	// and total weighted degree.
	intra := make(map[int]float64)
	degreeSum := make(map[int]float64)

	for _, id := range g.NodeIDs() {
		c := partition[id]
		degreeSum[c] += float64(g.WeightedDegree(id))
	}
	for _, edge := range g.Edges() {
		if partition[edge.A] == partition[edge.B] {
			intra[partition[edge.A]] += 2.0 * float64(edge.Weight)
		}
	}

	q := 0.0
	for c, k := range degreeSum {
		q += intra[c]/m2 - (k/m2)*(k/m2)
	}

	return q, nil
}
