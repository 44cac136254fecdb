package world

import (
	"fmt"

	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/core/tags"
	"github.com/chronicle-sim/chronicle/internal/spatial"
)

// Sites wraps the spatial graph with tags and the site <-> entity binding.
// Each site is bound to at most one entity and each entity to at most one
// site.
type Sites struct {
	graph    *spatial.Graph
	tags     *tags.Registry[spatial.NodeID]
	bound    map[spatial.NodeID]ecs.EntityID
	byEntity map[ecs.EntityID]spatial.NodeID
	grid     *spatial.Grid // rebuilt after the graph changes
	cellSize float64
}

func NewSites(cellSize float64) *Sites {
	return &Sites{
		graph:    spatial.NewGraph(),
		tags:     tags.New[spatial.NodeID](),
		bound:    make(map[spatial.NodeID]ecs.EntityID),
		byEntity: make(map[ecs.EntityID]spatial.NodeID),
		cellSize: cellSize,
	}
}

// Graph exposes the underlying graph for read-only queries.
func (s *Sites) Graph() *spatial.Graph { return s.graph }

// Define inserts a new site at pos and binds tag to it.
func (s *Sites) Define(tag string, pos spatial.V2) spatial.NodeID {
	id := s.graph.Insert(pos)
	if tag != "" {
		s.tags.Insert(tag, id)
	}
	s.grid = nil
	return id
}

// Lookup resolves a site tag.
func (s *Sites) Lookup(tag string) (spatial.NodeID, bool) {
	return s.tags.Lookup(tag)
}

// TagOf returns the tag bound to id, or "".
func (s *Sites) TagOf(id spatial.NodeID) string {
	tag, _ := s.tags.ReverseLookup(id)
	return tag
}

// Connect joins two sites by tag.
func (s *Sites) Connect(tagA, tagB string) error {
	a, ok := s.Lookup(tagA)
	if !ok {
		return fmt.Errorf("unknown site %q", tagA)
	}
	b, ok := s.Lookup(tagB)
	if !ok {
		return fmt.Errorf("unknown site %q", tagB)
	}
	s.graph.Connect(a, b)
	return nil
}

// Pos returns the position of id. Unbound entities have the null site, which
// lies outside every viewport.
func (s *Sites) Pos(id spatial.NodeID) spatial.V2 { return s.graph.Pos(id) }

// BoundEntity returns the entity bound to id, or ecs.Null.
func (s *Sites) BoundEntity(id spatial.NodeID) ecs.EntityID { return s.bound[id] }

// Bind ties rec to site. Binding either side twice is an invariant violation.
func (s *Sites) Bind(site spatial.NodeID, rec *Record) {
	if _, ok := s.graph.Node(site); !ok {
		panic(fmt.Sprintf("world: bind %s to unknown site %d", rec.ID, site))
	}
	if !rec.Site.IsNull() {
		panic(fmt.Sprintf("world: %s already bound to site %d", rec.ID, rec.Site))
	}
	if holder := s.bound[site]; !holder.IsNull() {
		panic(fmt.Sprintf("world: site %d already bound to %s", site, holder))
	}
	rec.Site = site
	s.bound[site] = rec.ID
	s.byEntity[rec.ID] = site
}

// Remove releases the site bound to a despawning entity.
func (s *Sites) Remove(id ecs.EntityID) {
	site, ok := s.byEntity[id]
	if !ok {
		return
	}
	delete(s.byEntity, id)
	delete(s.bound, site)
}

// Grid returns the cell index over site positions.
func (s *Sites) Grid() *spatial.Grid {
	if s.grid == nil {
		s.grid = spatial.IndexGraph(s.graph, s.cellSize)
	}
	return s.grid
}

// Route finds the shortest path between two tagged sites.
func (s *Sites) Route(fromTag, toTag string) ([]spatial.NodeID, float64, error) {
	from, ok := s.Lookup(fromTag)
	if !ok {
		return nil, 0, fmt.Errorf("unknown site %q", fromTag)
	}
	to, ok := s.Lookup(toTag)
	if !ok {
		return nil, 0, fmt.Errorf("unknown site %q", toTag)
	}
	path, cost, found := s.graph.AStar(from, to)
	if !found {
		return nil, 0, fmt.Errorf("no route from %q to %q", fromTag, toTag)
	}
	return path, cost, nil
}
