package vgraph

import "fmt"

// Static is an explicit adjacency graph. Successors are returned in the
// order their edges were added, which keeps searches over it deterministic.
//
// Static is not safe for concurrent mutation; once built it may be shared
// by any number of concurrent searches.
type Static[N comparable, D Distance] struct {
	order []N            // nodes in first-seen order
	out   map[N][]N      // successors in insertion order
	cost  map[edge[N]]D  // edge weights
	known map[N]struct{} // membership for order
}

type edge[N comparable] struct {
	from, to N
}

var _ Graph[string, int] = (*Static[string, int])(nil)

// NewStatic returns an empty Static graph.
func NewStatic[N comparable, D Distance]() *Static[N, D] {
	return &Static[N, D]{
		out:   make(map[N][]N),
		cost:  make(map[edge[N]]D),
		known: make(map[N]struct{}),
	}
}

// AddNode registers node with no edges. Adding an existing node is a no-op.
func (s *Static[N, D]) AddNode(node N) {
	if _, ok := s.known[node]; ok {
		return
	}
	s.known[node] = struct{}{}
	s.order = append(s.order, node)
}

// AddEdge adds the directed edge from→to with weight w, registering both
// endpoints. Re-adding an existing edge replaces its weight and keeps its
// position among from's successors. Negative weights are rejected with
// ErrNegativeWeight.
func (s *Static[N, D]) AddEdge(from, to N, w D) error {
	if w < 0 {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, from, to, w)
	}
	s.AddNode(from)
	s.AddNode(to)
	e := edge[N]{from: from, to: to}
	if _, ok := s.cost[e]; !ok {
		s.out[from] = append(s.out[from], to)
	}
	s.cost[e] = w

	return nil
}

// AddUndirected adds both a→b and b→a with weight w.
func (s *Static[N, D]) AddUndirected(a, b N, w D) error {
	if err := s.AddEdge(a, b, w); err != nil {
		return err
	}
	return s.AddEdge(b, a, w)
}

// OutEdges returns a copy of node's successors.
func (s *Static[N, D]) OutEdges(node N) []N {
	succ := s.out[node]
	if len(succ) == 0 {
		return nil
	}
	res := make([]N, len(succ))
	copy(res, succ)

	return res
}

// Dist returns the weight of from→to. It panics with ErrNotAdjacent when
// the edge does not exist.
func (s *Static[N, D]) Dist(from, to N) D {
	w, ok := s.cost[edge[N]{from: from, to: to}]
	if !ok {
		panic(fmt.Errorf("%w: %v→%v", ErrNotAdjacent, from, to))
	}
	return w
}

// HasEdge reports whether from→to exists.
func (s *Static[N, D]) HasEdge(from, to N) bool {
	_, ok := s.cost[edge[N]{from: from, to: to}]
	return ok
}

// Nodes returns every registered node in first-seen order.
func (s *Static[N, D]) Nodes() []N {
	res := make([]N, len(s.order))
	copy(res, s.order)
	return res
}

// EdgeCount returns the number of directed edges.
func (s *Static[N, D]) EdgeCount() int {
	return len(s.cost)
}
