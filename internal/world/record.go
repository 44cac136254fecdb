package world

import (
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/spatial"
)

// UnknownKind is the kind label of a freshly spawned record.
const UnknownKind = "UNKNOWN_KIND"

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// EntityColor is the colour shown for an entity. A dirty colour is re-derived
// from the Faction parent during the propagate phase.
type EntityColor struct {
	Current RGB
	Dirty   bool
}

// HierarchyName is one of the independent parent/child relations.
type HierarchyName uint8

const (
	Capital HierarchyName = iota // capital location -> the factions it rules
	Faction                      // faction -> its members
	PlaceOf                      // location -> entities located there
	hierarchyCount
)

// Hierarchies lists every relation in a fixed order.
func Hierarchies() [hierarchyCount]HierarchyName {
	return [hierarchyCount]HierarchyName{Capital, Faction, PlaceOf}
}

func (h HierarchyName) String() string {
	switch h {
	case Capital:
		return "capital"
	case Faction:
		return "faction"
	case PlaceOf:
		return "place_of"
	}
	return "unknown"
}

// Link is one entity's position in one hierarchy. Children are sorted by
// handle and never repeat.
type Link struct {
	Parent   ecs.EntityID
	Children []ecs.EntityID
}

// LinkName names a cross-reference that is not a hierarchy.
type LinkName uint8

const (
	Culture LinkName = iota
	linkCount
)

// Refs holds an entity's named cross-references. They are not kept
// consistent on despawn; read them through Store.Get.
type Refs [linkCount]ecs.EntityID

func (r *Refs) Get(l LinkName) ecs.EntityID     { return r[l] }
func (r *Refs) Set(l LinkName, id ecs.EntityID) { r[l] = id }

// Record is the mutable state of one entity.
type Record struct {
	ID   ecs.EntityID
	Name string
	Kind string
	// Site is the graph node this entity is bound to, if any.
	Site   spatial.NodeID
	Links  [hierarchyCount]Link
	Sprite string
	Size   float64
	Color  EntityColor
	Flags  Flags
	Refs   Refs
}

// Parent returns the record's parent under rel.
func (r *Record) Parent(rel HierarchyName) ecs.EntityID { return r.Links[rel].Parent }

// Children returns the record's children under rel. Callers must not modify
// the slice.
func (r *Record) Children(rel HierarchyName) []ecs.EntityID { return r.Links[rel].Children }
