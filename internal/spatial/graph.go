package spatial

import (
	"fmt"
	"math"
)

// NodeID is a handle into a Graph. Zero is the null node. Nodes are never
// removed, so handles need no generation.
type NodeID uint32

const NullNode NodeID = 0

func (id NodeID) IsNull() bool { return id == NullNode }

// Neighbour is one end of an undirected edge.
type Neighbour struct {
	ID       NodeID
	Distance float64
}

// Node is a positioned vertex and its adjacency list.
type Node struct {
	ID         NodeID
	Pos        V2
	Neighbours []Neighbour
}

type edgeKey struct {
	lo, hi NodeID
}

func canonical(a, b NodeID) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// Graph is a weighted undirected graph of positioned nodes. Edge weights are
// the Euclidean distance between endpoints and are cached per connected pair.
// Mutated at world construction only; read-only while ticking.
type Graph struct {
	nodes     []Node // index 0 is the null node
	distances map[edgeKey]float64
}

func NewGraph() *Graph {
	return &Graph{
		nodes:     make([]Node, 1, 64),
		distances: make(map[edgeKey]float64),
	}
}

// Insert adds an isolated node at pos.
func (g *Graph) Insert(pos V2) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Pos: pos})
	return id
}

func (g *Graph) valid(id NodeID) bool {
	return id != NullNode && int(id) < len(g.nodes)
}

func (g *Graph) mustNode(id NodeID) *Node {
	if !g.valid(id) {
		panic(fmt.Sprintf("spatial: unknown node %d", id))
	}
	return &g.nodes[id]
}

// Connect adds an undirected edge between a and b. Connecting an already
// connected pair or a node to itself changes nothing.
func (g *Graph) Connect(a, b NodeID) {
	na := g.mustNode(a)
	nb := g.mustNode(b)
	if a == b {
		return
	}
	d := na.Pos.Distance(nb.Pos)
	insertNoRepeat(&na.Neighbours, b, d)
	insertNoRepeat(&nb.Neighbours, a, d)
	g.distances[canonical(a, b)] = d
}

func insertNoRepeat(vs *[]Neighbour, id NodeID, d float64) {
	for _, n := range *vs {
		if n.ID == id {
			return
		}
	}
	*vs = append(*vs, Neighbour{ID: id, Distance: d})
}

// Distance returns 0 for a == b, the edge weight for connected pairs, and
// +Inf when there is no direct edge.
func (g *Graph) Distance(a, b NodeID) float64 {
	if a == b {
		return 0
	}
	if d, ok := g.distances[canonical(a, b)]; ok {
		return d
	}
	return math.Inf(1)
}

// Node returns the node for id.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if !g.valid(id) {
		return nil, false
	}
	return &g.nodes[id], true
}

// Pos returns the position of id. The null or an unknown node sits at +Inf,
// outside every viewport.
func (g *Graph) Pos(id NodeID) V2 {
	if !g.valid(id) {
		return V2{X: math.Inf(1), Y: math.Inf(1)}
	}
	return g.nodes[id].Pos
}

// Neighbours returns the adjacency list of id. Callers must not modify it.
func (g *Graph) Neighbours(id NodeID) []Neighbour {
	if !g.valid(id) {
		return nil
	}
	return g.nodes[id].Neighbours
}

// GreaterNeighbours calls fn for each neighbour whose handle is strictly
// greater than id, so that walking every node enumerates each edge once.
func (g *Graph) GreaterNeighbours(id NodeID, fn func(Neighbour)) {
	for _, n := range g.Neighbours(id) {
		if n.ID > id {
			fn(n)
		}
	}
}

// Each calls fn for every node in handle order.
func (g *Graph) Each(fn func(*Node)) {
	for i := 1; i < len(g.nodes); i++ {
		fn(&g.nodes[i])
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) - 1 }

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int { return len(g.distances) }
