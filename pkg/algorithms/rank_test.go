package algorithms

import (
	"testing"
)

// TestTopK_OrderAndTies tests descending score order with alphabetical tie-break
func TestTopK_OrderAndTies(t *testing.T) {
	scores := map[string]float64{
		"Carol": 0.5,
		"Alice": 0.9,
		"Dave":  0.5,
		"Bob":   0.7,
	}

	top := TopK(scores, 3)

	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}
	if top[0].ID != "Alice" || top[1].ID != "Bob" {
		t.Errorf("Unexpected leaders: %+v", top)
	}
	// Carol and Dave tie on 0.5; Carol wins alphabetically
	if top[2].ID != "Carol" {
		t.Errorf("Expected Carol on tie-break, got %s", top[2].ID)
	}
}

// TestTopK_FewerThanK tests a map smaller than k
func TestTopK_FewerThanK(t *testing.T) {
	scores := map[string]float64{"Alice": 1.0}

	top := TopK(scores, 10)

	if len(top) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(top))
	}
	if top[0].ID != "Alice" || top[0].Score != 1.0 {
		t.Errorf("Unexpected result: %+v", top[0])
	}
}

// TestTopK_ZeroK tests the k <= 0 guard
func TestTopK_ZeroK(t *testing.T) {
	scores := map[string]float64{"Alice": 1.0}

	if top := TopK(scores, 0); top != nil {
		t.Errorf("Expected nil for k=0, got %v", top)
	}
}
