package network

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/scholarnet/pkg/corpus"
	"github.com/dd0wney/scholarnet/pkg/logging"
)

// corpusGen generates random corpora over a small author pool so papers
// overlap enough to produce edges.
func corpusGen() gopter.Gen {
	authorGen := gen.OneConstOf("Alice", "Bob", "Carol", "Dave", "Eve", "Frank")
	return gen.SliceOf(gen.SliceOf(authorGen))
}

func toPapers(authorLists [][]string) []corpus.Paper {
	papers := make([]corpus.Paper, 0, len(authorLists))
	for _, authors := range authorLists {
		papers = append(papers, corpus.Paper{ID: "p", Authors: authors})
	}
	return papers
}

// TestBuilderInvariants uses property-based testing to verify graph builder
// invariants. These properties should ALWAYS hold for any corpus.
func TestBuilderInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	builder := NewBuilder(logging.NewNopLogger())

	// Property 1: every edge endpoint is a known node and no edge is a self-loop
	properties.Property("edges connect distinct existing nodes", prop.ForAll(
		func(authorLists [][]string) bool {
			g := builder.CoauthorGraph(toPapers(authorLists), 1)
			for _, edge := range g.Edges() {
				if edge.A == edge.B {
					return false
				}
				if !g.HasNode(edge.A) || !g.HasNode(edge.B) {
					return false
				}
				if edge.Weight < 1 {
					return false
				}
			}
			return true
		},
		corpusGen(),
	))

	// Property 2: total edge weight equals the sum of C(n,2) over papers,
	// where n is the paper's distinct author count
	properties.Property("total weight matches pairwise contributions", prop.ForAll(
		func(authorLists [][]string) bool {
			papers := toPapers(authorLists)
			g := builder.CoauthorGraph(papers, 1)

			expected := 0
			for i := range papers {
				n := len(papers[i].DistinctAuthors())
				expected += n * (n - 1) / 2
			}
			return g.TotalWeight() == expected
		},
		corpusGen(),
	))

	// Property 3: node paper counts sum to the total author listings
	properties.Property("paper counts sum to distinct author listings", prop.ForAll(
		func(authorLists [][]string) bool {
			papers := toPapers(authorLists)
			g := builder.CoauthorGraph(papers, 1)

			expected := 0
			for i := range papers {
				expected += len(papers[i].DistinctAuthors())
			}

			total := 0
			for _, id := range g.NodeIDs() {
				node, err := g.GetNode(id)
				if err != nil {
					return false
				}
				total += node.Count
			}
			return total == expected
		},
		corpusGen(),
	))

	// Property 4: building twice from the same corpus gives identical graphs
	properties.Property("build is deterministic", prop.ForAll(
		func(authorLists [][]string) bool {
			papers := toPapers(authorLists)
			g1 := builder.CoauthorGraph(papers, 1)
			g2 := builder.CoauthorGraph(papers, 1)

			if g1.NodeCount() != g2.NodeCount() || g1.EdgeCount() != g2.EdgeCount() {
				return false
			}
			e1, e2 := g1.Edges(), g2.Edges()
			for i := range e1 {
				if e1[i] != e2[i] {
					return false
				}
			}
			return true
		},
		corpusGen(),
	))

	properties.TestingRun(t)
}
