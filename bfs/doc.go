// Package bfs finds fewest-edge paths through a vgraph.Graph using
// breadth-first search.
//
// What
//
//   - Explore nodes in non-decreasing edge count from the start node.
//   - Stop at the first dequeued node equal to the end node and return the
//     path to it, reconstructed from the predecessor map.
//   - Edge costs (Graph.Dist) are ignored; use astar for weighted search.
//
// Guarantees
//
//   - The returned path has the minimum number of edges among all paths
//     from start to end.
//   - Every node is enqueued at most once, so cyclic graphs terminate as long
//     as the reachable region is finite.
//   - start == end yields [start] without calling OutEdges.
//   - An unreachable end yields Result.Found == false and a nil error.
//
// Determinism
//
//	Successors are enqueued in the order OutEdges returns them, so the
//	returned path is fully reproducible for a deterministic graph.
//
// Complexity (V = reachable nodes, E = edges explored)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, predecessor map, discovered set)
//
// Usage
//
//	path, ok := bfs.Path(g, start, end)
//
//	res, err := bfs.Search(g, start, end,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(12),
//	    bfs.WithMaxExpansions(1_000_000),
//	)
//
// Errors
//
//   - ErrNilGraph         if the graph is nil.
//   - ErrOptionViolation  for a negative MaxDepth or MaxExpansions.
//   - ErrBudgetExhausted  when MaxExpansions nodes were expanded without reaching end.
//   - ctx.Err()           when the context is cancelled.
package bfs
