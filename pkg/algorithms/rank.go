package algorithms

import (
	"container/heap"
	"sort"

	"golang.org/x/exp/constraints"
)

// Ranked holds an identity with its score.
type Ranked[K constraints.Ordered] struct {
	ID    K       `json:"id"`
	Score float64 `json:"score"`
}

// rankedHeap implements a min-heap for Ranked. The root is the entry that
// ranks worst: lowest score, highest ID on equal score. Eviction at the heap
// boundary therefore follows the same ordering as the final result and does
// not depend on map iteration order.
type rankedHeap[K constraints.Ordered] []Ranked[K]

func (h rankedHeap[K]) Len() int { return len(h) }
func (h rankedHeap[K]) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].ID > h[j].ID
}
func (h rankedHeap[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedHeap[K]) Push(x any) {
	*h = append(*h, x.(Ranked[K]))
}

func (h *rankedHeap[K]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopK returns the top k entries by score using a min-heap. Results are
// ordered by score descending, then ID ascending for determinism.
func TopK[K constraints.Ordered](scores map[K]float64, k int) []Ranked[K] {
	if k <= 0 {
		return nil
	}

	h := make(rankedHeap[K], 0, k)
	heap.Init(&h)

	for id, score := range scores {
		r := Ranked[K]{ID: id, Score: score}
		if h.Len() < k {
			heap.Push(&h, r)
		} else if score > h[0].Score || (score == h[0].Score && id < h[0].ID) {
			heap.Pop(&h)
			heap.Push(&h, r)
		}
	}

	result := make([]Ranked[K], h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(Ranked[K])
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].ID < result[j].ID
	})

	return result
}
