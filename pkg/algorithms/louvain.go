package algorithms

import (
	"sort"

	"github.com/dd0wney/scholarnet/pkg/graph"
)

// louvainEdge is one weighted adjacency entry in a working level.
type louvainEdge struct {
	to     int
	weight float64
}

// louvainLevel is the index-based weighted graph one round of contraction
// operates on. Self-loops carry the intra-community weight of contracted
// super-nodes and count twice toward the weighted degree.
type louvainLevel struct {
	neighbors [][]louvainEdge
	selfLoop  []float64
	degree    []float64
	m2        float64 // twice the total edge weight
}

func (l *louvainLevel) size() int { return len(l.neighbors) }

// Louvain partitions the graph into communities by two-phase modularity
// optimization: a greedy local-move phase followed by contraction of each
// community into a super-node, repeated until a round produces no merge.
// The optimum is local, not global. Node visitation order is fixed to the
// sorted node identities and gain ties are broken by the lowest community id,
// so the result is reproducible across runs.
func Louvain(g *graph.Graph) map[string]int {
	nodeIDs := g.NodeIDs()
	n := len(nodeIDs)

	partition := make(map[string]int, n)
	if n == 0 {
		return partition
	}

	index := make(map[string]int, n)
	for i, id := range nodeIDs {
		index[id] = i
	}

	level := &louvainLevel{
		neighbors: make([][]louvainEdge, n),
		selfLoop:  make([]float64, n),
		degree:    make([]float64, n),
	}
	for i, id := range nodeIDs {
		for _, nb := range g.Neighbors(id) {
			w := float64(g.Weight(id, nb))
			level.neighbors[i] = append(level.neighbors[i], louvainEdge{to: index[nb], weight: w})
			level.degree[i] += w
			level.m2 += w
		}
	}

	// assignment[i] is the current community of original node i across levels
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = i
	}

	for {
		community := oneLevel(level)

		renumbered, count := renumber(community)
		for i := range assignment {
			assignment[i] = renumbered[assignment[i]]
		}

		// No merge this round: local optimum reached
		if count == level.size() {
			break
		}

		level = contract(level, renumbered, count)
	}

	for i, id := range nodeIDs {
		partition[id] = assignment[i]
	}
	return partition
}

// oneLevel runs the greedy local-move phase: each node is repeatedly offered
// to the neighboring community with the largest positive modularity gain,
// until a full pass moves nothing.
func oneLevel(l *louvainLevel) []int {
	n := l.size()
	community := make([]int, n)
	communityDegree := make([]float64, n)
	for i := 0; i < n; i++ {
		community[i] = i
		communityDegree[i] = l.degree[i]
	}

	if l.m2 == 0 {
		return community
	}

	for {
		moved := false

		for i := 0; i < n; i++ {
			current := community[i]

			// Weight from i to each neighboring community
			neighWeight := make(map[int]float64)
			for _, e := range l.neighbors[i] {
				if e.to != i {
					neighWeight[community[e.to]] += e.weight
				}
			}

			// Remove i from its community while evaluating candidates
			communityDegree[current] -= l.degree[i]

			candidates := make([]int, 0, len(neighWeight)+1)
			if _, ok := neighWeight[current]; !ok {
				candidates = append(candidates, current)
			}
			for c := range neighWeight {
				candidates = append(candidates, c)
			}
			sort.Ints(candidates)

			// Gain of joining community c, up to a constant shared by all
			// candidates: k_i_in(c) - Σtot(c)·k_i/2m. Ascending candidate
			// order plus a strict comparison gives the lowest community id
			// on equal gain.
			best := -1
			bestGain := 0.0
			for _, c := range candidates {
				gain := neighWeight[c] - communityDegree[c]*l.degree[i]/l.m2
				if best == -1 || gain > bestGain {
					best = c
					bestGain = gain
				}
			}

			communityDegree[best] += l.degree[i]
			if best != current {
				community[i] = best
				moved = true
			}
		}

		if !moved {
			break
		}
	}

	return community
}

// renumber maps community labels to a dense 0..k-1 range in order of first
// appearance by node index, and returns the new labels and k.
func renumber(community []int) ([]int, int) {
	next := 0
	mapping := make(map[int]int, len(community))
	renumbered := make([]int, len(community))
	for i, c := range community {
		dense, ok := mapping[c]
		if !ok {
			dense = next
			mapping[c] = dense
			next++
		}
		renumbered[i] = dense
	}
	return renumbered, next
}

// contract builds the next level: each community becomes one super-node,
// intra-community weight moves into self-loops, and inter-community edges
// are aggregated.
func contract(l *louvainLevel, community []int, count int) *louvainLevel {
	next := &louvainLevel{
		neighbors: make([][]louvainEdge, count),
		selfLoop:  make([]float64, count),
		degree:    make([]float64, count),
		m2:        l.m2,
	}

	aggregated := make([]map[int]float64, count)
	for i := range aggregated {
		aggregated[i] = make(map[int]float64)
	}

	for i := 0; i < l.size(); i++ {
		ci := community[i]
		next.selfLoop[ci] += l.selfLoop[i]
		for _, e := range l.neighbors[i] {
			cj := community[e.to]
			if ci == cj {
				// Both endpoints contribute, so halve to store the edge once
				next.selfLoop[ci] += e.weight / 2.0
			} else {
				aggregated[ci][cj] += e.weight
			}
		}
	}

	for ci := 0; ci < count; ci++ {
		targets := make([]int, 0, len(aggregated[ci]))
		for cj := range aggregated[ci] {
			targets = append(targets, cj)
		}
		sort.Ints(targets)
		for _, cj := range targets {
			w := aggregated[ci][cj]
			next.neighbors[ci] = append(next.neighbors[ci], louvainEdge{to: cj, weight: w})
			next.degree[ci] += w
		}
		next.degree[ci] += 2.0 * next.selfLoop[ci]
	}

	return next
}
