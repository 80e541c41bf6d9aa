package astar

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/vgraph"
)

// Path is Search without options: it returns the cheapest path from start
// to a node satisfying isGoal and true, or nil and false when no goal is
// reachable. A nil h is treated as Zero.
func Path[N comparable, D vgraph.Distance](g vgraph.Graph[N, D], start N, isGoal Goal[N], h Heuristic[N, D]) ([]N, bool) {
	res, err := Search(g, start, isGoal, h)
	if err != nil {
		return nil, false
	}
	return res.Path, res.Found
}

// Dijkstra runs Search with the Zero heuristic.
func Dijkstra[N comparable, D vgraph.Distance](g vgraph.Graph[N, D], start N, isGoal Goal[N], opts ...Option) (*Result[N, D], error) {
	return Search(g, start, isGoal, Zero[N, D], opts...)
}

// Search runs A* on g from start until a node satisfying isGoal is removed
// from the open set. A nil h is treated as Zero.
//
// Returns:
//   - ErrNilGraph / ErrNilGoal for nil inputs.
//   - ErrOptionViolation for invalid options.
//   - ErrBudgetExhausted when MaxExpansions nodes were closed first.
//   - ctx.Err() when the context is cancelled.
//
// An unreachable goal is not an error: the Result has Found == false.
//
// Complexity: O((V + E) log E) time, O(V + E) memory, where V and E count
// the nodes and edges explored.
func Search[N comparable, D vgraph.Distance](
	g vgraph.Graph[N, D],
	start N,
	isGoal Goal[N],
	h Heuristic[N, D],
	opts ...Option,
) (*Result[N, D], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if isGoal == nil {
		return nil, ErrNilGoal
	}
	if h == nil {
		h = Zero[N, D]
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	var zero D
	r := &runner[N, D]{
		graph:  g,
		goal:   isGoal,
		h:      h,
		opts:   cfg,
		ctx:    cfg.Ctx,
		dist:   map[N]D{start: zero},
		prev:   make(map[N]N),
		closed: make(map[N]struct{}),
	}
	r.push(start, zero)
	cfg.Logger.Debug("astar: search from %v, h=%v", start, h(start))

	return r.process()
}

// runner holds the mutable state for a single search.
type runner[N comparable, D vgraph.Distance] struct {
	graph  vgraph.Graph[N, D] // borrowed read-only
	goal   Goal[N]
	h      Heuristic[N, D]
	opts   Options
	ctx    context.Context
	dist   map[N]D        // best known distance from start
	prev   map[N]N        // predecessor on the best known path
	closed map[N]struct{} // nodes whose distance is final
	open   openSet[N, D]
	seq    uint64
}

// push inserts node at distance g into the open set.
func (r *runner[N, D]) push(node N, g D) {
	heap.Push(&r.open, &openItem[N, D]{node: node, g: g, f: g + r.h(node), seq: r.seq})
	r.seq++
}

// process pops the cheapest open entry until a goal is found, the open set
// empties, the budget runs out or the context is cancelled.
func (r *runner[N, D]) process() (*Result[N, D], error) {
	for r.open.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return nil, r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.open).(*openItem[N, D])
		cur := item.node
		if _, done := r.closed[cur]; done {
			continue // stale duplicate
		}

		if r.goal(cur) {
			path := vgraph.Reconstruct(r.prev, cur)
			r.opts.Logger.Debug("astar: reached %v with cost %v after %d expansions", cur, item.g, len(r.closed))
			return &Result[N, D]{Path: path, Found: true, Cost: item.g, Expanded: len(r.closed)}, nil
		}

		if r.opts.MaxExpansions > 0 && len(r.closed) >= r.opts.MaxExpansions {
			r.opts.Logger.Debug("astar: budget of %d expansions exhausted", r.opts.MaxExpansions)
			return &Result[N, D]{Expanded: len(r.closed)}, ErrBudgetExhausted
		}

		r.closed[cur] = struct{}{}
		r.relax(cur, item.g)
	}

	r.opts.Logger.Debug("astar: open set exhausted, %d nodes expanded", len(r.closed))
	return &Result[N, D]{Expanded: len(r.closed)}, nil
}

// relax offers every successor of cur a path through cur. Only strict
// improvements are recorded and re-queued.
//
// Assumes gCur is the final distance of cur.
func (r *runner[N, D]) relax(cur N, gCur D) {
	for _, next := range r.graph.OutEdges(cur) {
		if _, done := r.closed[next]; done {
			continue
		}
		cand := gCur + r.graph.Dist(cur, next)
		if best, seen := r.dist[next]; seen && cand >= best {
			continue
		}
		r.dist[next] = cand
		r.prev[next] = cur
		r.push(next, cand)
	}
}
