package spatial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(g *Grid, e Extents) []NodeID {
	var out []NodeID
	g.Query(e, func(id NodeID) { out = append(out, id) })
	return out
}

func TestGrid_QueryReturnsCandidatesInHandleOrder(t *testing.T) {
	graph := NewGraph()
	far := graph.Insert(Vec(100, 100))
	near := graph.Insert(Vec(1, 1))
	neg := graph.Insert(Vec(-20, -3))
	grid := IndexGraph(graph, 8)

	assert.Equal(t, []NodeID{near}, collect(grid, Rect(0, 0, 5, 5)))
	assert.Equal(t, []NodeID{far, near, neg}, collect(grid, Unbounded()))
	assert.Empty(t, collect(grid, Rect(40, 40, 60, 60)))
}

func TestGrid_EmptyAndInvertedQueries(t *testing.T) {
	grid := NewGrid(0)
	assert.Empty(t, collect(grid, Unbounded()))

	grid.Add(NodeID(1), Vec(0, 0))
	assert.Equal(t, 1, grid.Len())
	assert.Empty(t, collect(grid, Rect(5, 5, -5, -5)))
}

func TestGrid_FarApartNodesUnboundedQuery(t *testing.T) {
	graph := NewGraph()
	b := graph.Insert(Vec(160000, 160000))
	a := graph.Insert(Vec(0, 0))
	c := graph.Insert(Vec(-160000, 5))
	grid := IndexGraph(graph, 8)
	require.Equal(t, 3, grid.Len())

	done := make(chan []NodeID, 1)
	go func() { done <- collect(grid, Unbounded()) }()
	select {
	case got := <-done:
		assert.Equal(t, []NodeID{b, a, c}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("unbounded query over a sparse map did not finish")
	}

	assert.Equal(t, []NodeID{a}, collect(grid, Rect(-10, -10, 10, 10)))
	assert.Equal(t, []NodeID{b}, collect(grid, Rect(100000, 100000, 200000, 200000)))
}
