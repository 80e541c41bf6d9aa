package vgraph

import "fmt"

// Reconstruct walks prev backward from goal until it reaches a node without
// a predecessor (the search start) and returns the nodes in start→goal order.
//
// prev must be acyclic, which holds for every map built by bfs and astar.
// Call it only for a goal the search actually reached; for an unreached goal
// the result is the single-node path [goal].
//
// Complexity: O(L) time and memory, L = path length.
func Reconstruct[N comparable](prev map[N]N, goal N) []N {
	path := []N{goal}
	for cur := goal; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathLength sums g.Dist over every consecutive pair of path, starting from
// the zero Distance. Paths with fewer than two nodes cost zero.
//
// A consecutive pair that is not an edge of g is a caller bug: PathLength
// panics with an error wrapping ErrNotAdjacent. Use CheckPath first when the
// path comes from an untrusted source.
func PathLength[N comparable, D Distance](g Graph[N, D], path []N) D {
	if err := CheckPath(g, path); err != nil {
		panic(err)
	}
	var total D
	for i := 1; i < len(path); i++ {
		total += g.Dist(path[i-1], path[i])
	}

	return total
}

// CheckPath reports whether every consecutive pair of path is an edge of g.
// It returns an error wrapping ErrNotAdjacent for the first offending step.
func CheckPath[N comparable, D Distance](g Graph[N, D], path []N) error {
	for i := 1; i < len(path); i++ {
		if !adjacent(g, path[i-1], path[i]) {
			return fmt.Errorf("%w: step %d (%v→%v)", ErrNotAdjacent, i, path[i-1], path[i])
		}
	}
	return nil
}

func adjacent[N comparable, D Distance](g Graph[N, D], from, to N) bool {
	for _, n := range g.OutEdges(from) {
		if n == to {
			return true
		}
	}
	return false
}
