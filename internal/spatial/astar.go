package spatial

import (
	"container/heap"
	"math"
)

// metricRate converts float distances to fixed-point integers so queue
// ordering is exact and reproducible across platforms.
const metricRate = 1000

func metric(d float64) int64 {
	return int64(math.Round(d * metricRate))
}

// heuristicMetric rounds down so the estimate never exceeds the straight-line
// distance.
func heuristicMetric(d float64) int64 {
	return int64(math.Floor(d * metricRate))
}

func fromMetric(m int64) float64 {
	return float64(m) / metricRate
}

type openItem struct {
	id NodeID
	g  int64
	f  int64
	h  int64
}

// openSet is a min-heap ordered by f, then h (prefer nodes closer to the goal),
// then node handle.
type openSet []openItem

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	if s[i].h != s[j].h {
		return s[i].h < s[j].h
	}
	return s[i].id < s[j].id
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(openItem)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]
	return item
}

// AStar finds the cheapest path from start to end over the neighbour graph.
// The heuristic is the straight-line distance to end. The returned path
// includes both endpoints; cost is the sum of the fixed-point edge weights
// converted back to distance units. ok is false when either node is unknown or
// no path exists.
func (g *Graph) AStar(start, end NodeID) (path []NodeID, cost float64, ok bool) {
	if !g.valid(start) || !g.valid(end) {
		return nil, 0, false
	}
	goal := g.nodes[end].Pos
	h := func(id NodeID) int64 {
		return heuristicMetric(g.nodes[id].Pos.Distance(goal))
	}

	best := map[NodeID]int64{start: 0}
	cameFrom := make(map[NodeID]NodeID)
	open := &openSet{}
	heap.Push(open, openItem{id: start, g: 0, f: h(start), h: h(start)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(openItem)
		if cur.g > best[cur.id] {
			continue // superseded by a cheaper entry
		}
		if cur.id == end {
			return g.reconstruct(cameFrom, start, end), fromMetric(cur.g), true
		}
		for _, n := range g.nodes[cur.id].Neighbours {
			ng := cur.g + metric(n.Distance)
			if old, seen := best[n.ID]; seen && ng >= old {
				continue
			}
			best[n.ID] = ng
			cameFrom[n.ID] = cur.id
			nh := h(n.ID)
			heap.Push(open, openItem{id: n.ID, g: ng, f: ng + nh, h: nh})
		}
	}
	return nil, 0, false
}

func (g *Graph) reconstruct(cameFrom map[NodeID]NodeID, start, end NodeID) []NodeID {
	var rev []NodeID
	for at := end; ; {
		rev = append(rev, at)
		if at == start {
			break
		}
		at = cameFrom[at]
	}
	path := make([]NodeID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}

// PathLength sums the cached edge distances along path. Returns +Inf when two
// consecutive nodes are not connected.
func (g *Graph) PathLength(path []NodeID) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += g.Distance(path[i-1], path[i])
	}
	return total
}
