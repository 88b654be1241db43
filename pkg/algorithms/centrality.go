package algorithms

import (
	"container/list"

	"github.com/dd0wney/scholarnet/pkg/graph"
)

// brandesCentrality runs a single O(VE) Brandes pass over the undirected
// graph and returns raw (unnormalised) node betweenness. The caller applies
// the normalisation factor.
func brandesCentrality(g *graph.Graph) map[string]float64 {
	nodeIDs := g.NodeIDs()

	betweenness := make(map[string]float64, len(nodeIDs))
	for _, id := range nodeIDs {
		betweenness[id] = 0.0
	}

	for _, source := range nodeIDs {
		stack := make([]string, 0, len(nodeIDs))
		predecessors := make(map[string][]string, len(nodeIDs))
		sigma := make(map[string]float64, len(nodeIDs))
		distance := make(map[string]int, len(nodeIDs))

		for _, id := range nodeIDs {
			sigma[id] = 0.0
			distance[id] = -1
		}

		sigma[source] = 1.0
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(string)
			stack = append(stack, v)

			for _, w := range g.Neighbors(v) {
				if distance[w] < 0 {
					queue.PushBack(w)
					distance[w] = distance[v] + 1
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of dependency onto predecessors
		delta := make(map[string]float64, len(nodeIDs))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	return betweenness
}

// BetweennessCentrality computes normalised betweenness centrality for all
// nodes. Measures how often a node appears on shortest paths between other
// nodes. Shortest paths are unweighted; collaboration weights do not shorten
// distances.
func BetweennessCentrality(g *graph.Graph) map[string]float64 {
	betweenness := brandesCentrality(g)

	n := g.NodeCount()
	if n > 2 {
		// Undirected: raw accumulation counts every pair twice, and the
		// normalised score divides by (n-1)(n-2)/2 pairs.
		normFactor := 1.0 / float64((n-1)*(n-2))
		for id := range betweenness {
			betweenness[id] *= normFactor
		}
	}

	return betweenness
}

// ClosenessCentrality computes closeness centrality for all nodes:
// (n-1) / sum of shortest-path distances, restricted to the connected
// component containing the node. Isolated nodes score 0.
func ClosenessCentrality(g *graph.Graph) map[string]float64 {
	nodeIDs := g.NodeIDs()
	closeness := make(map[string]float64, len(nodeIDs))

	for _, source := range nodeIDs {
		distance := map[string]int{source: 0}

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(string)
			for _, w := range g.Neighbors(v) {
				if _, seen := distance[w]; !seen {
					distance[w] = distance[v] + 1
					queue.PushBack(w)
				}
			}
		}

		totalDistance := 0
		for _, d := range distance {
			totalDistance += d
		}

		if totalDistance > 0 {
			closeness[source] = float64(len(distance)-1) / float64(totalDistance)
		} else {
			closeness[source] = 0.0
		}
	}

	return closeness
}

// DegreeCentrality computes normalised degree centrality for all nodes:
// degree / (n-1). Cheap, defined on any graph, computed over the full graph
// regardless of connectivity.
func DegreeCentrality(g *graph.Graph) map[string]float64 {
	nodeIDs := g.NodeIDs()
	degree := make(map[string]float64, len(nodeIDs))

	n := len(nodeIDs)
	for _, id := range nodeIDs {
		if n > 1 {
			degree[id] = float64(g.Degree(id)) / float64(n-1)
		} else {
			degree[id] = 0.0
		}
	}

	return degree
}
