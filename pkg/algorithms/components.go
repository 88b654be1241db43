package algorithms

import (
	"container/list"
	"sort"

	"github.com/dd0wney/scholarnet/pkg/graph"
)

// ConnectedComponents finds all connected components in the graph. Components
// are discovered in sorted node order and each component's members are sorted,
// so the result is deterministic.
func ConnectedComponents(g *graph.Graph) [][]string {
	visited := make(map[string]bool)
	components := make([][]string, 0)

	// BFS from each unvisited node, in sorted order
	for _, start := range g.NodeIDs() {
		if visited[start] {
			continue
		}

		component := make([]string, 0)
		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			id := queue.Remove(queue.Front()).(string)
			component = append(component, id)

			for _, nb := range g.Neighbors(id) {
				if !visited[nb] {
					visited[nb] = true
					queue.PushBack(nb)
				}
			}
		}

		components = append(components, component)
	}

	// Members within a component arrive in BFS order; sort for determinism
	for _, component := range components {
		sort.Strings(component)
	}

	return components
}

// LargestComponent returns the member identities of the largest connected
// component. Size ties are broken by the component discovered first, which is
// the one containing the alphabetically smallest node.
func LargestComponent(g *graph.Graph) []string {
	var largest []string
	for _, component := range ConnectedComponents(g) {
		if len(component) > len(largest) {
			largest = component
		}
	}
	return largest
}
