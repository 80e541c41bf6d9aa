package gridgraph

import "github.com/katalvlaran/vgraph/astar"

// Manhattan returns the Conn4 heuristic toward goal: |dx|+|dy| times MinCost.
// It never overestimates because every step moves one axis by one and
// costs at least MinCost.
func (gg *GridGraph) Manhattan(goal Cell) astar.Heuristic[Cell, int] {
	k := gg.minCost
	return func(c Cell) int {
		return k * (abs(c.X-goal.X) + abs(c.Y-goal.Y))
	}
}

// Chebyshev returns the Conn8 heuristic toward goal: max(|dx|,|dy|) times MinCost.
func (gg *GridGraph) Chebyshev(goal Cell) astar.Heuristic[Cell, int] {
	k := gg.minCost
	return func(c Cell) int {
		return k * max(abs(c.X-goal.X), abs(c.Y-goal.Y))
	}
}

// Heuristic picks Manhattan or Chebyshev to match gg.Conn.
func (gg *GridGraph) Heuristic(goal Cell) astar.Heuristic[Cell, int] {
	if gg.Conn == Conn8 {
		return gg.Chebyshev(goal)
	}
	return gg.Manhattan(goal)
}

// ShortestPath runs A* from src to dst with the heuristic for gg.Conn.
// Returns ErrOutOfBounds for cells off the grid.
func (gg *GridGraph) ShortestPath(src, dst Cell, opts ...astar.Option) (*astar.Result[Cell, int], error) {
	for _, c := range []Cell{src, dst} {
		if _, err := gg.Value(c); err != nil {
			return nil, err
		}
	}
	return astar.Search[Cell, int](gg, src, func(c Cell) bool { return c == dst }, gg.Heuristic(dst), opts...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
