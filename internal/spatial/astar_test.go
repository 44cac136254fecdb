package spatial

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAStar_PrefersShorterRoute(t *testing.T) {
	g := NewGraph()
	a := g.Insert(Vec(0, 0))
	b := g.Insert(Vec(3, 4))
	c := g.Insert(Vec(6, 0))
	g.Connect(a, b)
	g.Connect(b, c)
	g.Connect(a, c)

	path, cost, ok := g.AStar(a, c)
	require.True(t, ok)
	assert.Equal(t, []NodeID{a, c}, path)
	assert.InDelta(t, 6.0, cost, 1e-9)
	assert.InDelta(t, g.PathLength(path), cost, 1e-3)
}

func TestAStar_DetourWhenNoDirectEdge(t *testing.T) {
	g := NewGraph()
	a := g.Insert(Vec(0, 0))
	b := g.Insert(Vec(3, 4))
	c := g.Insert(Vec(6, 0))
	g.Connect(a, b)
	g.Connect(b, c)

	path, cost, ok := g.AStar(a, c)
	require.True(t, ok)
	assert.Equal(t, []NodeID{a, b, c}, path)
	assert.InDelta(t, 10.0, cost, 1e-9)
}

func TestAStar_SameNode(t *testing.T) {
	g := NewGraph()
	a := g.Insert(Vec(2, 2))

	path, cost, ok := g.AStar(a, a)
	require.True(t, ok)
	assert.Equal(t, []NodeID{a}, path)
	assert.Zero(t, cost)
}

func TestAStar_NoPath(t *testing.T) {
	g := NewGraph()
	a := g.Insert(Vec(0, 0))
	b := g.Insert(Vec(1, 0))
	island := g.Insert(Vec(5, 5))
	g.Connect(a, b)

	_, _, ok := g.AStar(a, island)
	assert.False(t, ok)
	_, _, ok = g.AStar(a, NullNode)
	assert.False(t, ok)
	_, _, ok = g.AStar(NodeID(42), a)
	assert.False(t, ok)
}

func TestAStar_TiesBreakDeterministically(t *testing.T) {
	// Two equal-cost routes around a unit square.
	g := NewGraph()
	a := g.Insert(Vec(0, 0))
	b := g.Insert(Vec(1, 0))
	c := g.Insert(Vec(0, 1))
	d := g.Insert(Vec(1, 1))
	g.Connect(a, b)
	g.Connect(b, d)
	g.Connect(a, c)
	g.Connect(c, d)

	for i := 0; i < 5; i++ {
		path, cost, ok := g.AStar(a, d)
		require.True(t, ok)
		assert.Equal(t, []NodeID{a, b, d}, path)
		assert.InDelta(t, 2.0, cost, 1e-9)
	}
}

func TestAStar_CostMatchesPathLengthOnLargerGraph(t *testing.T) {
	g := NewGraph()
	ids := make([]NodeID, 0, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			ids = append(ids, g.Insert(Vec(float64(x)*1.5, float64(y)*0.7)))
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := y*4 + x
			if x < 3 {
				g.Connect(ids[i], ids[i+1])
			}
			if y < 3 {
				g.Connect(ids[i], ids[i+4])
			}
		}
	}

	path, cost, ok := g.AStar(ids[0], ids[15])
	require.True(t, ok)
	assert.Equal(t, ids[0], path[0])
	assert.Equal(t, ids[15], path[len(path)-1])
	assert.InDelta(t, 3*1.5+3*0.7, cost, 1e-6)
	assert.InDelta(t, g.PathLength(path), cost, 1e-3)
}

// shortestCost is a plain Dijkstra over the same fixed-point edge metric.
func shortestCost(g *Graph, start, end NodeID) (int64, bool) {
	const unvisited = math.MaxInt64
	dist := make([]int64, g.Len()+1)
	done := make([]bool, g.Len()+1)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[start] = 0
	for {
		cur := NullNode
		for id := NodeID(1); int(id) <= g.Len(); id++ {
			if !done[id] && dist[id] != unvisited && (cur.IsNull() || dist[id] < dist[cur]) {
				cur = id
			}
		}
		if cur.IsNull() {
			return 0, false
		}
		if cur == end {
			return dist[cur], true
		}
		done[cur] = true
		for _, n := range g.Neighbours(cur) {
			if d := dist[cur] + metric(n.Distance); d < dist[n.ID] {
				dist[n.ID] = d
			}
		}
	}
}

func TestAStar_MatchesExhaustiveSearchOnRandomGraphs(t *testing.T) {
	tests := []struct {
		name    string
		nodes   int
		density float64 // chance that a pair is connected
	}{
		{"complete small", 6, 1},
		{"complete large", 24, 1},
		{"dense", 20, 0.5},
		{"sparse", 30, 0.15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 25; seed++ {
				rng := rand.New(rand.NewPCG(seed, uint64(tt.nodes)))
				g := NewGraph()
				for i := 0; i < tt.nodes; i++ {
					g.Insert(Vec(rng.Float64()*100-50, rng.Float64()*100-50))
				}
				for a := NodeID(1); int(a) <= tt.nodes; a++ {
					for b := a + 1; int(b) <= tt.nodes; b++ {
						if rng.Float64() < tt.density {
							g.Connect(a, b)
						}
					}
				}
				start := NodeID(1 + rng.IntN(tt.nodes))
				end := NodeID(1 + rng.IntN(tt.nodes))

				want, reachable := shortestCost(g, start, end)
				path, cost, ok := g.AStar(start, end)
				require.Equal(t, reachable, ok, "seed %d", seed)
				if !ok {
					continue
				}
				// Rounding each edge lets the heuristic overshoot by under
				// half a unit per hop.
				slack := float64(len(path)) / (2 * metricRate)
				assert.LessOrEqual(t, cost, fromMetric(want)+slack, "seed %d", seed)
				assert.Equal(t, start, path[0])
				assert.Equal(t, end, path[len(path)-1])
				assert.InDelta(t, g.PathLength(path), cost, slack+1e-9, "seed %d", seed)
				if tt.density == 1 && start != end {
					assert.LessOrEqual(t, cost, fromMetric(metric(g.Distance(start, end)))+slack)
				}
			}
		})
	}
}
