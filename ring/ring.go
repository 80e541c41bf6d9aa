// Package ring models the ring-tile puzzle as a vgraph.Graph.
//
// Tiles sit on a ring. A player starts on one tile with a running sum and
// on every turn steps to the left or right neighbor, adding that tile's
// value to the sum. The goal is to bring the sum to a target value; once
// the sum goes negative the game is over and no further moves exist.
//
// Each move costs 1, so Solve returns the solution with the fewest turns.
package ring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vgraph"
	"github.com/katalvlaran/vgraph/astar"
)

// ErrEmptyRing indicates a puzzle with no tiles.
var ErrEmptyRing = errors.New("ring: puzzle must have at least one tile")

// ErrBadPosition indicates a start position outside the ring.
var ErrBadPosition = errors.New("ring: start position out of range")

// State is a node of the puzzle graph: where the player stands and the
// sum accumulated so far.
type State struct {
	Position int
	Sum      int
}

// String renders the state as "pos:sum".
func (s State) String() string {
	return fmt.Sprintf("%d:%d", s.Position, s.Sum)
}

// Puzzle holds the tile values in ring order.
type Puzzle struct {
	Spaces []int
}

var _ vgraph.Graph[State, int] = (*Puzzle)(nil)

// New returns a Puzzle over a copy of spaces, or ErrEmptyRing.
func New(spaces []int) (*Puzzle, error) {
	if len(spaces) == 0 {
		return nil, ErrEmptyRing
	}
	cp := make([]int, len(spaces))
	copy(cp, spaces)

	return &Puzzle{Spaces: cp}, nil
}

// OutEdges returns the left then right move from s. A negative sum ends
// the game, so such states have no successors; neither does any state of
// a puzzle without tiles. Positions wrap around the ring in both
// directions.
func (p *Puzzle) OutEdges(s State) []State {
	n := len(p.Spaces)
	if s.Sum < 0 || n == 0 {
		return nil
	}
	left := ((s.Position-1)%n + n) % n
	right := ((s.Position+1)%n + n) % n

	return []State{
		{Position: left, Sum: s.Sum + p.Spaces[left]},
		{Position: right, Sum: s.Sum + p.Spaces[right]},
	}
}

// Dist is 1 for every move.
func (p *Puzzle) Dist(_, _ State) int {
	return 1
}

// Solve searches for the fewest moves from start to a state whose sum
// equals target. opts are passed through to astar.Search, which is how
// callers bound puzzles whose sums can grow without limit.
func (p *Puzzle) Solve(start State, target int, opts ...astar.Option) (*astar.Result[State, int], error) {
	if start.Position < 0 || start.Position >= len(p.Spaces) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrBadPosition, start.Position, len(p.Spaces))
	}
	reached := func(s State) bool { return s.Sum == target }

	return astar.Dijkstra[State, int](p, start, reached, opts...)
}
