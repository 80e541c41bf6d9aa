// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - The vgraph.Graph contract over Cell nodes, for bfs and astar
//   - Identification of connected components of “land” cells
//   - Minimal-conversion expansions between components
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/vgraph"
)

var _ vgraph.Graph[Cell, int] = (*GridGraph)(nil)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadThreshold if opts.LandThreshold is negative.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, opts.LandThreshold)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation; track the cheapest land cell
	cells := make([][]int, h)
	minCost := -1
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.LandThreshold && (minCost < 0 || v < minCost) {
				minCost = v
			}
		}
	}
	if minCost < 0 {
		minCost = 0
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		minCost:         minCost,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D builds a GridGraph with the default LandThreshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether c is in bounds and at least LandThreshold.
func (gg *GridGraph) IsLand(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.LandThreshold
}

// Value returns the stored value of c, or ErrOutOfBounds.
func (gg *GridGraph) Value(c Cell) (int, error) {
	if !gg.InBounds(c.X, c.Y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}
	return gg.CellValues[c.Y][c.X], nil
}

// MinCost returns the smallest land value, i.e. the cheapest possible step.
// Heuristics scale by it to stay admissible.
func (gg *GridGraph) MinCost() int {
	return gg.minCost
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// OutEdges returns the land neighbors of c in offset order (clockwise from
// north). Water cells and cells off the grid have no successors.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) OutEdges(c Cell) []Cell {
	if !gg.IsLand(c) {
		return nil
	}
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if gg.IsLand(n) {
			out = append(out, n)
		}
	}

	return out
}

// Dist returns the value of the destination cell: stepping onto a cell
// costs its terrain value. It panics with vgraph.ErrNotAdjacent when to is
// not a land neighbor of from.
func (gg *GridGraph) Dist(from, to Cell) int {
	if !gg.adjacent(from, to) {
		panic(fmt.Errorf("%w: (%d,%d)→(%d,%d)", vgraph.ErrNotAdjacent, from.X, from.Y, to.X, to.Y))
	}
	return gg.CellValues[to.Y][to.X]
}

// adjacent reports whether to is a land cell one offset away from land cell from.
func (gg *GridGraph) adjacent(from, to Cell) bool {
	if !gg.IsLand(from) || !gg.IsLand(to) {
		return false
	}
	for _, d := range gg.neighborOffsets {
		if from.X+d[0] == to.X && from.Y+d[1] == to.Y {
			return true
		}
	}
	return false
}

// ToStatic materializes the land cells and their edges into a
// vgraph.Static graph. Edge weights equal the destination value, so
// searches over either graph agree.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToStatic() *vgraph.Static[Cell, int] {
	s := vgraph.NewStatic[Cell, int]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := Cell{X: x, Y: y}
			if !gg.IsLand(u) {
				continue
			}
			s.AddNode(u)
			for _, v := range gg.OutEdges(u) {
				// weights are ≥ LandThreshold ≥ 0, AddEdge cannot fail
				_ = s.AddEdge(u, v, gg.CellValues[v.Y][v.X])
			}
		}
	}

	return s
}

// Index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}
