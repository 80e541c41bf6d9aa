// Package astar finds cheapest paths through a vgraph.Graph using A*
// (best-first search ordered by f = g + h).
//
// What
//
//   - The goal is a predicate, so a search may target any node satisfying
//     a condition rather than one fixed node.
//   - The heuristic h estimates the remaining cost. With Zero the search is
//     Dijkstra's uniform-cost search; Dijkstra is a shortcut for that.
//   - Paths are rebuilt from the predecessor map with vgraph.Reconstruct.
//
// Algorithm
//
//  1. Seed the open set with start at f = h(start) and g(start) = 0.
//  2. Pop the entry with the smallest f (ties: earliest pushed).
//  3. Skip it if its node is already closed (stale duplicate).
//  4. If the node satisfies the goal, reconstruct and return.
//  5. Close the node. For every successor not closed, compute
//     g(cur) + Dist(cur, next); on a strict improvement record the
//     predecessor and push the successor at f = g + h.
//
// Guarantees
//
//   - With an admissible and consistent heuristic and non-negative edge
//     costs, the first goal popped has minimum total cost.
//   - Each node is closed at most once. Requeueing happens only on strict
//     improvement, so cyclic graphs with a finite reachable region
//     terminate.
//   - isGoal(start) yields [start] with Cost 0 and no expansion.
//   - An unreachable goal yields Result.Found == false and a nil error.
//
// Limits
//
//	Negative edge costs, inconsistent heuristics and infinite branching with
//	no reachable goal are outside the contract. Nothing detects them at run
//	time: the path may be suboptimal or the search may not terminate. Bound
//	such searches with WithMaxExpansions or WithContext.
//
// Complexity (V = nodes closed, E = edges relaxed)
//
//   - Time:   O((V + E) log E)
//   - Memory: O(V + E)   (distance and predecessor maps, lazy open set)
//
// Usage
//
//	path, ok := astar.Path(g, start, func(n Cell) bool { return n == goal }, h)
//
//	res, err := astar.Search(g, start, isGoal, h,
//	    astar.WithContext(ctx),
//	    astar.WithMaxExpansions(1_000_000),
//	)
package astar
