package vgraph

import "errors"

// Sentinel errors for graph contract violations.
var (
	// ErrNotAdjacent reports a step between two nodes that are not joined by an edge.
	ErrNotAdjacent = errors.New("vgraph: nodes are not adjacent")

	// ErrNegativeWeight is returned when a negative edge cost is added to a Static graph.
	ErrNegativeWeight = errors.New("vgraph: negative edge weight")
)

// Distance is the set of types usable as edge and path costs.
// The zero value is the additive identity.
type Distance interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Graph describes a state space by behavior.
//
// OutEdges returns every direct successor of node; an empty result marks a
// terminal state. It must be idempotent because searches call it once per
// expansion and never cache the result.
//
// Dist returns the cost of the edge from→to, where to is one of
// OutEdges(from). Calling it on a non-edge is a programming error; weighted
// searches additionally require the result to be non-negative.
//
// Implementations are borrowed read-only for the duration of a search, so a
// Graph that is safe for concurrent reads may serve parallel searches.
type Graph[N comparable, D Distance] interface {
	OutEdges(node N) []N
	Dist(from, to N) D
}

// Funcs adapts two plain functions to Graph. It suits state spaces with no
// per-instance data. A nil Cost prices every edge at 1.
type Funcs[N comparable, D Distance] struct {
	Out  func(node N) []N
	Cost func(from, to N) D
}

var _ Graph[int, int] = Funcs[int, int]{}

// OutEdges calls f.Out, or returns nil when it is unset.
func (f Funcs[N, D]) OutEdges(node N) []N {
	if f.Out == nil {
		return nil
	}
	return f.Out(node)
}

// Dist calls f.Cost, or returns 1 when it is unset.
func (f Funcs[N, D]) Dist(from, to N) D {
	if f.Cost == nil {
		return 1
	}
	return f.Cost(from, to)
}
