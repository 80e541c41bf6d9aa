package vgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vgraph"
)

func TestFuncs_Defaults(t *testing.T) {
	var f vgraph.Funcs[string, int]
	assert.Nil(t, f.OutEdges("A"))
	assert.Equal(t, 1, f.Dist("A", "B"))

	f.Cost = func(from, to string) int { return len(from) + len(to) }
	assert.Equal(t, 5, f.Dist("AB", "CDE"))
}

func TestStatic_AddEdge(t *testing.T) {
	g := vgraph.NewStatic[string, int]()
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 2)) // replaces weight, keeps position

	assert.Equal(t, []string{"C", "B"}, g.OutEdges("A"))
	assert.Equal(t, 2, g.Dist("A", "C"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []string{"A", "C", "B"}, g.Nodes())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Nil(t, g.OutEdges("B"))
}

func TestStatic_OutEdgesIsCopy(t *testing.T) {
	g := vgraph.NewStatic[int, int]()
	require.NoError(t, g.AddEdge(1, 2, 1))
	out := g.OutEdges(1)
	out[0] = 99
	assert.Equal(t, []int{2}, g.OutEdges(1))
}

func TestStatic_Errors(t *testing.T) {
	g := vgraph.NewStatic[string, int]()
	require.ErrorIs(t, g.AddEdge("A", "B", -1), vgraph.ErrNegativeWeight)
	assert.Zero(t, g.EdgeCount())
	assert.Panics(t, func() { g.Dist("A", "B") })
}

func TestStatic_Undirected(t *testing.T) {
	g := vgraph.NewStatic[string, int]()
	require.NoError(t, g.AddUndirected("A", "B", 3))
	assert.Equal(t, 3, g.Dist("A", "B"))
	assert.Equal(t, 3, g.Dist("B", "A"))
	require.ErrorIs(t, g.AddUndirected("A", "C", -2), vgraph.ErrNegativeWeight)

	g.AddNode("Z")
	g.AddNode("Z")
	assert.Equal(t, []string{"A", "B", "Z"}, g.Nodes())
}
