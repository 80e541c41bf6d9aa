// Package gridgraph treats a 2D grid of cells as a weighted graph, enabling
// path searches, component analysis and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - It implements vgraph.Graph[Cell, int]: land cells are nodes, stepping
//     onto a cell costs its value, water cells are walls.
//   - Manhattan (Conn4) and Chebyshev (Conn8) heuristics, scaled by the
//     cheapest land value so they stay admissible, drive ShortestPath.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 costs) to connect two island sets.
//   - ToStatic materializes the grid as a vgraph.Static.
//
// Why:
//
//   - Game maps: route finding over terrain, contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//
// Complexity:
//
//   - ShortestPath:          O(W×H×d log(W×H×d)), Memory: O(W×H×d).
//   - ConnectedComponents:   O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:          O(W×H×d log(W×H×d)), Memory: O(W×H×d).
//   - ToStatic:              O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land" (≥ 0).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: LandThreshold is negative.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
