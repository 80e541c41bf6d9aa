package astar

import "github.com/katalvlaran/vgraph"

// openItem is one entry of the open set. A node may have several entries
// after repeated improvements; all but the cheapest become stale and are
// skipped once the node is closed.
type openItem[N comparable, D vgraph.Distance] struct {
	node N
	g    D      // distance from start when pushed
	f    D      // g + h(node)
	seq  uint64 // push order, breaks ties on f
}

// openSet is a min-heap of *openItem ordered by f, then by push order.
// FIFO tie-breaking keeps results deterministic without requiring an
// order on N.
type openSet[N comparable, D vgraph.Distance] []*openItem[N, D]

// Len returns the number of items in the heap.
func (pq openSet[N, D]) Len() int { return len(pq) }

// Less orders by f ascending, then by earlier push.
func (pq openSet[N, D]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openSet[N, D]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be an *openItem, onto the heap.
func (pq *openSet[N, D]) Push(x any) { *pq = append(*pq, x.(*openItem[N, D])) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *openSet[N, D]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
