package spatial

import (
	"math"
	"sort"
)

// Grid is a cell-based index over node positions, used to find the nodes
// inside a viewport without scanning the whole graph. Callers do the exact
// Contains filtering on the candidates it yields.
// Accessed only from the simulation goroutine; no locks.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]NodeID
	// Occupied cell range; queries are clamped to it.
	minX, minY, maxX, maxY int64
}

type cellKey struct {
	cx int64
	cy int64
}

// DefaultCellSize fits a handful of sites per cell at typical map scales.
const DefaultCellSize = 8.0

func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]NodeID),
		minX:     math.MaxInt64,
		minY:     math.MaxInt64,
		maxX:     math.MinInt64,
		maxY:     math.MinInt64,
	}
}

func (g *Grid) toCellCoord(v float64) int64 {
	c := math.Floor(v / g.cellSize)
	// Clamp so unbounded extents do not overflow the conversion.
	if c > math.MaxInt32 {
		return math.MaxInt32
	}
	if c < math.MinInt32 {
		return math.MinInt32
	}
	return int64(c)
}

// Add places a node into the grid.
func (g *Grid) Add(id NodeID, pos V2) {
	k := cellKey{cx: g.toCellCoord(pos.X), cy: g.toCellCoord(pos.Y)}
	g.cells[k] = append(g.cells[k], id)
	g.minX = min(g.minX, k.cx)
	g.minY = min(g.minY, k.cy)
	g.maxX = max(g.maxX, k.cx)
	g.maxY = max(g.maxY, k.cy)
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int { return len(g.cells) }

// Query calls fn for every node in the cells overlapping e, in handle order.
func (g *Grid) Query(e Extents, fn func(NodeID)) {
	if len(g.cells) == 0 {
		return
	}
	x0 := max(g.toCellCoord(e.TopLeft.X), g.minX)
	y0 := max(g.toCellCoord(e.TopLeft.Y), g.minY)
	x1 := min(g.toCellCoord(e.BottomRight.X), g.maxX)
	y1 := min(g.toCellCoord(e.BottomRight.Y), g.maxY)
	if x0 > x1 || y0 > y1 {
		return
	}
	var found []NodeID
	// Sparse maps: walk the occupied cells instead of the covered range.
	w, h, n := x1-x0+1, y1-y0+1, int64(len(g.cells))
	if w > n || h > n/w {
		for k, ids := range g.cells {
			if k.cx >= x0 && k.cx <= x1 && k.cy >= y0 && k.cy <= y1 {
				found = append(found, ids...)
			}
		}
	} else {
		for cx := x0; cx <= x1; cx++ {
			for cy := y0; cy <= y1; cy++ {
				found = append(found, g.cells[cellKey{cx: cx, cy: cy}]...)
			}
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
	for _, id := range found {
		fn(id)
	}
}

// IndexGraph builds a grid over every node of graph.
func IndexGraph(graph *Graph, cellSize float64) *Grid {
	grid := NewGrid(cellSize)
	graph.Each(func(n *Node) {
		grid.Add(n.ID, n.Pos)
	})
	return grid
}
