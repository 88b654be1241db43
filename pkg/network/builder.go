// Package network derives collaboration and topical graphs from a paper
// corpus: an undirected weighted co-authorship graph over normalized author
// names, and a keyword co-occurrence graph over extracted keywords.
package network

import (
	"github.com/dd0wney/scholarnet/pkg/corpus"
	"github.com/dd0wney/scholarnet/pkg/graph"
	"github.com/dd0wney/scholarnet/pkg/logging"
)

// pair is a canonical unordered node pair (A < B lexically).
type pair struct {
	a, b string
}

func makePair(x, y string) pair {
	if x < y {
		return pair{a: x, b: y}
	}
	return pair{a: y, b: x}
}

// Builder constructs the co-authorship and keyword co-occurrence graphs.
// Both builds are two-pass: counts accumulate into plain maps first, and the
// graph is materialized only once counts are final, so no algorithm ever
// traverses a structure that is still being mutated.
type Builder struct {
	logger logging.Logger
}

// NewBuilder creates a graph builder.
func NewBuilder(logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Builder{logger: logger.With(logging.Component("builder"))}
}

// CoauthorGraph builds the co-authorship graph. Each paper increments the
// paper count of every distinct author on it and adds 1 to the weight of
// every unordered pair of distinct co-authors. Single-author papers
// contribute nodes but no edges. Edges whose final weight is below
// minCollaborations are dropped at materialization; author paper counts are
// unaffected by the threshold.
func (b *Builder) CoauthorGraph(papers []corpus.Paper, minCollaborations int) *graph.Graph {
	paperCounts := make(map[string]int)
	edgeWeights := make(map[pair]int)

	for i := range papers {
		authors := papers[i].DistinctAuthors()
		for _, author := range authors {
			paperCounts[author]++
		}
		for j := 0; j < len(authors); j++ {
			for k := j + 1; k < len(authors); k++ {
				edgeWeights[makePair(authors[j], authors[k])]++
			}
		}
	}

	g := materialize(paperCounts, edgeWeights, minCollaborations)

	b.logger.Info("built co-authorship graph",
		logging.Nodes(g.NodeCount()),
		logging.Edges(g.EdgeCount()))

	return g
}

// KeywordGraph builds the keyword co-occurrence graph. Keywords are
// deduplicated per paper before pairing; edges whose total observed
// co-occurrence is below minCooccurrence are excluded from the returned
// graph, while node occurrence counts stay accurate.
func (b *Builder) KeywordGraph(papers []corpus.Paper, minCooccurrence int) *graph.Graph {
	occurrences := make(map[string]int)
	edgeWeights := make(map[pair]int)

	for i := range papers {
		keywords := papers[i].DistinctKeywords()
		for _, kw := range keywords {
			occurrences[kw]++
		}
		for j := 0; j < len(keywords); j++ {
			for k := j + 1; k < len(keywords); k++ {
				edgeWeights[makePair(keywords[j], keywords[k])]++
			}
		}
	}

	g := materialize(occurrences, edgeWeights, minCooccurrence)

	b.logger.Info("built keyword co-occurrence graph",
		logging.Nodes(g.NodeCount()),
		logging.Edges(g.EdgeCount()))

	return g
}

// materialize turns accumulated counts into a graph. The weight threshold is
// judged on the final accumulated weight, not incrementally.
func materialize(nodeCounts map[string]int, edgeWeights map[pair]int, minWeight int) *graph.Graph {
	g := graph.New()
	for id, count := range nodeCounts {
		// Normalization never yields empty identities
		_, _ = g.AddNode(id, count)
	}
	for p, weight := range edgeWeights {
		if weight < minWeight {
			continue
		}
		// Pair endpoints are distinct and were added above
		_ = g.AddEdgeWeight(p.a, p.b, weight)
	}
	return g
}
