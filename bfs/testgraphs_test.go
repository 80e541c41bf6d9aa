package bfs_test

import (
	"math/rand"

	"github.com/katalvlaran/vgraph"
)

// line is 1 → 2 → 3 at unit cost.
var line = vgraph.Funcs[int, int]{
	Out: func(n int) []int {
		switch n {
		case 1:
			return []int{2}
		case 2:
			return []int{3}
		}
		return nil
	},
}

// cycles has several loops back to 1 and nothing reaching 33.
var cycles = vgraph.Funcs[int, int]{
	Out: func(n int) []int {
		switch n {
		case 1:
			return []int{2, 3}
		case 2:
			return []int{3, 6}
		case 3:
			return []int{4, 5}
		case 4:
			return []int{10, 5}
		case 5:
			return []int{1}
		case 6:
			return []int{2}
		case 7:
			return []int{8}
		case 8:
			return []int{9}
		case 9:
			return []int{10}
		case 10:
			return []int{1}
		}
		return nil
	},
	Cost: func(from, _ int) int {
		if from == 3 {
			return 3
		}
		return 1
	},
}

// randomGraph builds a directed graph on n nodes with roughly n*deg edges.
func randomGraph(rng *rand.Rand, n, deg int) *vgraph.Static[int, int] {
	g := vgraph.NewStatic[int, int]()
	for v := 0; v < n; v++ {
		g.AddNode(v)
	}
	for i := 0; i < n*deg; i++ {
		_ = g.AddEdge(rng.Intn(n), rng.Intn(n), 1)
	}
	return g
}

// hopDistances returns the minimum edge count between every pair via
// Floyd–Warshall; -1 marks unreachable pairs.
func hopDistances(g *vgraph.Static[int, int], n int) [][]int {
	const inf = 1 << 30
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			d[i][j] = inf
		}
		d[i][i] = 0
		for _, j := range g.OutEdges(i) {
			if i != j {
				d[i][j] = 1
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	for i := range d {
		for j := range d[i] {
			if d[i][j] == inf {
				d[i][j] = -1
			}
		}
	}
	return d
}
