package algorithms

import (
	"testing"

	"github.com/dd0wney/scholarnet/pkg/graph"
)

// TestClusteringCoefficient_Triangle tests that a complete triangle scores 1
// everywhere
func TestClusteringCoefficient_Triangle(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})

	cc := ClusteringCoefficient(g)

	for _, id := range []string{"A", "B", "C"} {
		if !almostEqual(cc[id], 1.0) {
			t.Errorf("Expected coefficient 1.0 for %s, got %f", id, cc[id])
		}
	}
}

// TestClusteringCoefficient_Path tests that path nodes have no triangles
func TestClusteringCoefficient_Path(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}})

	cc := ClusteringCoefficient(g)

	for _, id := range []string{"A", "B", "C"} {
		if !almostEqual(cc[id], 0.0) {
			t.Errorf("Expected coefficient 0 for %s, got %f", id, cc[id])
		}
	}
}

// TestClusteringCoefficient_Partial tests a triangle with a pendant node:
// the attachment point sees one closed pair out of three.
func TestClusteringCoefficient_Partial(t *testing.T) {
	g := buildGraph(t, [][2]string{
		{"A", "B"}, {"B", "C"}, {"A", "C"},
		{"A", "D"},
	})

	cc := ClusteringCoefficient(g)

	if !almostEqual(cc["A"], 1.0/3.0) {
		t.Errorf("Expected coefficient 1/3 for A, got %f", cc["A"])
	}
	if !almostEqual(cc["B"], 1.0) || !almostEqual(cc["C"], 1.0) {
		t.Errorf("Expected coefficient 1.0 for B and C, got %f / %f", cc["B"], cc["C"])
	}
	if !almostEqual(cc["D"], 0.0) {
		t.Errorf("Expected coefficient 0 for the pendant, got %f", cc["D"])
	}
}

// TestAverageClusteringCoefficient tests the mean over the pendant graph
func TestAverageClusteringCoefficient(t *testing.T) {
	g := buildGraph(t, [][2]string{
		{"A", "B"}, {"B", "C"}, {"A", "C"},
		{"A", "D"},
	})

	avg := AverageClusteringCoefficient(g)

	// (1/3 + 1 + 1 + 0) / 4
	if !almostEqual(avg, 7.0/12.0) {
		t.Errorf("Expected average 7/12, got %f", avg)
	}
}

// TestAverageClusteringCoefficient_Empty tests the empty graph
func TestAverageClusteringCoefficient_Empty(t *testing.T) {
	if avg := AverageClusteringCoefficient(graph.New()); avg != 0.0 {
		t.Errorf("Expected 0 for empty graph, got %f", avg)
	}
}
