package vgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vgraph"
)

// line is 1 → 2 → 3 at unit cost.
func line() vgraph.Funcs[int, int] {
	return vgraph.Funcs[int, int]{
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
}

func TestReconstruct(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "B", "D": "C", "X": "A"}
	assert.Equal(t, []string{"A", "B", "C", "D"}, vgraph.Reconstruct(prev, "D"))
	assert.Equal(t, []string{"A", "X"}, vgraph.Reconstruct(prev, "X"))
	assert.Equal(t, []string{"A"}, vgraph.Reconstruct(prev, "A"))
	assert.Equal(t, []string{"A"}, vgraph.Reconstruct(map[string]string{}, "A"))
}

func TestPathLength(t *testing.T) {
	g := line()
	assert.Equal(t, 2, vgraph.PathLength[int, int](g, []int{1, 2, 3}))
	assert.Equal(t, 1, vgraph.PathLength[int, int](g, []int{2, 3}))
	assert.Zero(t, vgraph.PathLength[int, int](g, []int{1}))
	assert.Zero(t, vgraph.PathLength[int, int](g, nil))
}

func TestPathLength_Weighted(t *testing.T) {
	g := vgraph.NewStatic[string, float64]()
	require.NoError(t, g.AddEdge("A", "B", 1.5))
	require.NoError(t, g.AddEdge("B", "C", 2.25))
	assert.InDelta(t, 3.75, vgraph.PathLength[string, float64](g, []string{"A", "B", "C"}), 1e-9)
}

func TestPathLength_NonAdjacentPanics(t *testing.T) {
	g := line()
	assert.Panics(t, func() {
		vgraph.PathLength[int, int](g, []int{1, 3})
	})
}

func TestCheckPath(t *testing.T) {
	g := line()
	require.NoError(t, vgraph.CheckPath[int, int](g, []int{1, 2, 3}))
	require.NoError(t, vgraph.CheckPath[int, int](g, nil))

	err := vgraph.CheckPath[int, int](g, []int{1, 2, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, vgraph.ErrNotAdjacent))
	assert.Contains(t, err.Error(), "step 2")
}
