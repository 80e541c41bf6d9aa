package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/vgraph"
	"github.com/katalvlaran/vgraph/astar"
)

// source is the virtual node feeding every cell of the source component.
const source = -1

// bridgeGraph views the whole grid (water included) over row-major indices.
// Stepping onto land costs 0, onto water 1, so path cost counts conversions.
type bridgeGraph struct {
	gg  *GridGraph
	src []Cell
}

var _ vgraph.Graph[int, int] = bridgeGraph{}

func (b bridgeGraph) OutEdges(u int) []int {
	if u == source {
		out := make([]int, len(b.src))
		for i, c := range b.src {
			out[i] = b.gg.Index(c)
		}
		return out
	}
	uc := b.gg.Coordinate(u)
	out := make([]int, 0, len(b.gg.neighborOffsets))
	for _, d := range b.gg.neighborOffsets {
		vx, vy := uc.X+d[0], uc.Y+d[1]
		if b.gg.InBounds(vx, vy) {
			out = append(out, b.gg.Index(Cell{X: vx, Y: vy}))
		}
	}
	return out
}

func (b bridgeGraph) Dist(u, v int) int {
	if u == source || b.gg.IsLand(b.gg.Coordinate(v)) {
		return 0
	}
	return 1
}

// ExpandIsland finds a minimum‐conversion path of “water” cells
// to connect any cell in component srcComp to any cell in component dstComp,
// as identified by ConnectedComponents(). Each water‐cell conversion costs 1.
// Returns the cells of the path (including the start and end land cells)
// and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Uniform-cost search (astar with a zero heuristic) from a virtual
//     node joined to every srcComp cell at cost 0:
//     • Moving into an existing land cell   → cost 0
//     • Moving into a water cell             → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path and drop the virtual node.
//
// Complexity: O(W·H·d · log(W·H·d)).
// Memory:     O(W·H·d) for distances, predecessors and the open set.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []Cell, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, c := range comps[dstComp] {
		dstSet[gg.Index(c)] = struct{}{}
	}
	reached := func(i int) bool {
		_, ok := dstSet[i]
		return ok
	}

	res, err := astar.Dijkstra[int, int](bridgeGraph{gg: gg, src: comps[srcComp]}, source, reached)
	if err != nil {
		return nil, 0, err
	}
	if !res.Found {
		return nil, 0, ErrNoPath
	}
	path = make([]Cell, 0, len(res.Path)-1)
	for _, i := range res.Path[1:] {
		path = append(path, gg.Coordinate(i))
	}
	return path, res.Cost, nil
}
