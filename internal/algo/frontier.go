package algo

import "container/heap"

// frontierEntry is one slot of the open set: the priority (f-value) paired
// with the arena index of the node it prioritizes, never the node itself —
// keeping the heap decoupled from the arena's storage layout.
type frontierEntry struct {
	f       int
	nodeIdx int
	index   int // heap.Interface bookkeeping
}

// frontierHeap is a binary min-heap over frontierEntry.f, the Go-idiomatic
// replacement for original_source/minheap.h's hand-rolled array heap.
type frontierHeap []*frontierEntry

func (h frontierHeap) Len() int           { return len(h) }
func (h frontierHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *frontierHeap) Push(x any) {
	e := x.(*frontierEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// frontier is the search's open set: the node with the lowest f-value is
// always extracted next.
type frontier struct {
	h frontierHeap
}

func newFrontier(capacityHint int) *frontier {
	h := make(frontierHeap, 0, capacityHint)
	heap.Init(&h)
	return &frontier{h: h}
}

func (fr *frontier) push(f, nodeIdx int) {
	heap.Push(&fr.h, &frontierEntry{f: f, nodeIdx: nodeIdx})
}

func (fr *frontier) empty() bool {
	return fr.h.Len() == 0
}

// popMin extracts and returns the arena index of the node with the lowest
// f-value currently in the frontier.
func (fr *frontier) popMin() int {
	e := heap.Pop(&fr.h).(*frontierEntry)
	return e.nodeIdx
}
