package graph

import (
	"sort"
)

// Node is a vertex identified by a string key (author name or keyword)
// carrying its cumulative count attribute. For author nodes the count is the
// number of papers the author appears on; for keyword nodes it is the number
// of papers the keyword occurs in.
type Node struct {
	ID    string
	Count int
}

// Edge is an undirected weighted relation between two distinct nodes.
// Endpoints are stored in canonical order (A < B lexically).
type Edge struct {
	A      string
	B      string
	Weight int
}

// Graph is an in-memory undirected weighted graph keyed by node identity.
// It is exclusively owned by one analysis invocation and is not safe for
// concurrent mutation.
type Graph struct {
	nodes map[string]*Node
	adj   map[string]map[string]int // node -> neighbor -> edge weight
	edges int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]int),
	}
}

// AddNode ensures a node exists and adds delta to its count.
// Creates the node with the given delta if it does not exist yet.
func (g *Graph) AddNode(id string, delta int) (*Node, error) {
	if id == "" {
		return nil, &Error{Op: "AddNode", Entity: "node", Cause: ErrEmptyID}
	}
	node, ok := g.nodes[id]
	if !ok {
		node = &Node{ID: id}
		g.nodes[id] = node
		g.adj[id] = make(map[string]int)
	}
	node.Count += delta
	return node, nil
}

// AddEdgeWeight adds delta to the weight of the undirected edge between a and b,
// creating the edge if it does not exist. Both endpoints must already exist and
// self-loops are rejected.
func (g *Graph) AddEdgeWeight(a, b string, delta int) error {
	if a == b {
		return &Error{Op: "AddEdgeWeight", Entity: "edge", ID: a, Cause: ErrSelfLoop}
	}
	if _, ok := g.nodes[a]; !ok {
		return &Error{Op: "AddEdgeWeight", Entity: "node", ID: a, Cause: ErrNodeNotFound}
	}
	if _, ok := g.nodes[b]; !ok {
		return &Error{Op: "AddEdgeWeight", Entity: "node", ID: b, Cause: ErrNodeNotFound}
	}
	if _, ok := g.adj[a][b]; !ok {
		g.edges++
	}
	g.adj[a][b] += delta
	g.adj[b][a] += delta
	return nil
}

// GetNode returns the node with the given identity, or ErrNodeNotFound.
func (g *Graph) GetNode(id string) (*Node, error) {
	node, ok := g.nodes[id]
	if !ok {
		return nil, &Error{Op: "GetNode", Entity: "node", ID: id, Cause: ErrNodeNotFound}
	}
	return node, nil
}

// HasNode reports whether a node with the given identity exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether an edge between a and b exists.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Weight returns the weight of the edge between a and b, or 0 if absent.
func (g *Graph) Weight(a, b string) int {
	return g.adj[a][b]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Degree returns the number of distinct neighbors of the given node.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// WeightedDegree returns the sum of edge weights incident to the given node.
func (g *Graph) WeightedDegree(id string) int {
	total := 0
	for _, w := range g.adj[id] {
		total += w
	}
	return total
}

// TotalWeight returns the sum of all edge weights (each undirected edge once).
func (g *Graph) TotalWeight() int {
	total := 0
	for a, neighbors := range g.adj {
		for b, w := range neighbors {
			if a < b {
				total += w
			}
		}
	}
	return total
}

// NodeIDs returns all node identities in sorted order. Algorithms iterate
// nodes in this order so results are reproducible across runs.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Neighbors returns the neighbor identities of the given node in sorted order.
func (g *Graph) Neighbors(id string) []string {
	neighbors := make([]string, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)
	return neighbors
}

// Edges returns all edges in canonical endpoint order, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for a, neighbors := range g.adj {
		for b, w := range neighbors {
			if a < b {
				edges = append(edges, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// Density returns 2|E| / (|V|(|V|-1)), defined as 0 for graphs with fewer
// than two nodes.
func (g *Graph) Density() float64 {
	n := len(g.nodes)
	if n < 2 {
		return 0.0
	}
	return 2.0 * float64(g.edges) / (float64(n) * float64(n-1))
}

// Subgraph returns the induced subgraph on the given node identities.
// Unknown identities are ignored. Node counts are preserved.
func (g *Graph) Subgraph(ids []string) *Graph {
	sub := New()
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		if node, ok := g.nodes[id]; ok {
			keep[id] = true
			// Existing nodes always have non-empty identities
			_, _ = sub.AddNode(id, node.Count)
		}
	}
	for a := range keep {
		for b, w := range g.adj[a] {
			if a < b && keep[b] {
				// Both endpoints were just added and a != b
				_ = sub.AddEdgeWeight(a, b, w)
			}
		}
	}
	return sub
}
