package bfs

import (
	"context"

	"github.com/katalvlaran/vgraph"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker[N comparable, D vgraph.Distance] struct {
	graph    vgraph.Graph[N, D]
	opts     Options
	ctx      context.Context
	queue    []queueItem[N]
	head     int
	seen     map[N]struct{}
	prev     map[N]N
	expanded int
}

// Path is Search without options: it returns the fewest-edge path from
// start to end and true, or nil and false when end is unreachable.
func Path[N comparable, D vgraph.Distance](g vgraph.Graph[N, D], start, end N) ([]N, bool) {
	res, err := Search(g, start, end)
	if err != nil {
		return nil, false
	}
	return res.Path, res.Found
}

// Search runs breadth-first search on g from start until end is dequeued.
// Returns ErrNilGraph for a nil graph, ErrOptionViolation for bad options,
// ErrBudgetExhausted when MaxExpansions runs out, or the context's error.
// An unreachable end is not an error: the Result has Found == false.
func Search[N comparable, D vgraph.Distance](g vgraph.Graph[N, D], start, end N, opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if start == end {
		return &Result[N]{Path: []N{start}, Found: true}, nil
	}

	w := &walker[N, D]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		seen:  map[N]struct{}{start: {}},
		prev:  make(map[N]N),
	}
	w.queue = append(w.queue, queueItem[N]{node: start})
	o.Logger.Debug("bfs: search from %v to %v", start, end)

	return w.loop(end)
}

// loop processes the queue until end is dequeued, the queue empties,
// the budget runs out or the context is cancelled.
func (w *walker[N, D]) loop(end N) (*Result[N], error) {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.node == end {
			path := vgraph.Reconstruct(w.prev, end)
			w.opts.Logger.Debug("bfs: reached %v at depth %d after %d expansions", end, item.depth, w.expanded)
			return &Result[N]{Path: path, Found: true, Depth: item.depth, Expanded: w.expanded}, nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue // successors would lie beyond MaxDepth
		}
		if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
			w.opts.Logger.Debug("bfs: budget of %d expansions exhausted", w.opts.MaxExpansions)
			return &Result[N]{Expanded: w.expanded}, ErrBudgetExhausted
		}
		w.expand(item)
	}

	w.opts.Logger.Debug("bfs: %v unreachable, %d nodes expanded", end, w.expanded)
	return &Result[N]{Expanded: w.expanded}, nil
}

// dequeue pops the front item. The backing slice is released once drained
// past half its length so long searches do not pin visited items.
func (w *walker[N, D]) dequeue() queueItem[N] {
	item := w.queue[w.head]
	w.head++
	if w.head > 1024 && w.head*2 > len(w.queue) {
		w.queue = append(w.queue[:0:0], w.queue[w.head:]...)
		w.head = 0
	}
	return item
}

// expand records a predecessor for, and enqueues, every successor of
// item not discovered before.
func (w *walker[N, D]) expand(item queueItem[N]) {
	w.expanded++
	for _, next := range w.graph.OutEdges(item.node) {
		if _, ok := w.seen[next]; ok {
			continue
		}
		w.seen[next] = struct{}{}
		w.prev[next] = item.node
		w.queue = append(w.queue, queueItem[N]{node: next, depth: item.depth + 1})
	}
}
