// Package vgraph is a search engine for virtual graphs: state spaces that are
// described by behavior instead of being stored as vertex and edge lists.
//
// What
//
//   - Graph is the contract a caller implements: OutEdges enumerates the
//     successors of a node and Dist prices a single edge.
//   - Reconstruct turns a predecessor map into a start→goal path.
//   - PathLength sums the edge costs along a path.
//   - Static and Funcs adapt explicit adjacency data or plain functions.
//
// The searches themselves live in subpackages:
//
//	bfs/       — fewest-edges path to a fixed end node
//	astar/     — cheapest path to any node satisfying a goal predicate
//	gridgraph/ — weighted 2D grids with admissible grid heuristics
//	ring/      — the ring-tile puzzle, solved with astar
//	log/       — leveled logging shared by the searches and cmd/ringsolve
//
// Nodes
//
//	A node is any comparable value. Successors are recomputed on demand and
//	the full node set is never materialized, so graphs may be infinite as long
//	as the searched region is finite.
//
// Limits
//
//	Edge costs must be non-negative. Negative costs, inconsistent heuristics
//	and infinite branching without a reachable goal are outside the contract:
//	results may be suboptimal and a search may not terminate. Bound such
//	searches with WithMaxExpansions or WithContext.
//
// Quick example:
//
//	g := vgraph.NewStatic[string, int]()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 1)
//	path, ok := bfs.Path(g, "A", "C") // [A B C], true
//	cost := vgraph.PathLength(g, path) // 2
package vgraph
