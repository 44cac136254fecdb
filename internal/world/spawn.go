package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/core/event"
	"github.com/chronicle-sim/chronicle/internal/spatial"
)

// Name is either a fixed string or a word drawn from another entity's list.
type Name struct {
	Fixed  string
	Source ecs.EntityID
	List   NameList
}

func FixedName(s string) Name { return Name{Fixed: s} }

// NameFrom draws from list on source, usually a culture.
func NameFrom(source ecs.EntityID, list NameList) Name {
	return Name{Source: source, List: list}
}

// Color is either fixed or inherited from the Faction parent.
type Color struct {
	Fixed   RGB
	Dynamic bool
}

func FixedColor(c RGB) Color { return Color{Fixed: c} }
func DynamicColor() Color    { return Color{Dynamic: true} }

type Looks struct {
	Sprite string
	Size   float64
	Color  Color
}

// Relation names the other end of a hierarchy link.
type Relation struct {
	Rel    HierarchyName
	Entity ecs.EntityID
}

// RefArg sets one cross-reference.
type RefArg struct {
	Link   LinkName
	Target ecs.EntityID
}

// SpawnEntity describes everything assigned to a new entity in one step.
type SpawnEntity struct {
	Tag       string
	Name      Name
	Kind      string
	Looks     Looks
	Site      spatial.NodeID
	Flags     Flags
	Refs      []RefArg
	Parents   []Relation
	Children  []Relation
	Siblings  []Relation // join the sibling's parent under Rel
	NameLists *NameLists
}

// Spawn creates an entity from info and announces it on the bus.
func (st *State) Spawn(info SpawnEntity, rng *rand.Rand) ecs.EntityID {
	name := info.Name.Fixed
	if !info.Name.Source.IsNull() {
		name = st.Store.NameListsOf(info.Name.Source).PickRandomly(info.Name.List, rng)
	}

	rec := st.Store.Spawn(info.Tag)
	rec.Name = name
	rec.Kind = info.Kind
	if rec.Kind == "" {
		rec.Kind = UnknownKind
	}
	rec.Sprite = info.Looks.Sprite
	rec.Size = info.Looks.Size
	if info.Looks.Color.Dynamic {
		rec.Color = EntityColor{Dirty: true}
	} else {
		rec.Color = EntityColor{Current: info.Looks.Color.Fixed}
	}
	rec.Flags = info.Flags
	for _, r := range info.Refs {
		rec.Refs.Set(r.Link, r.Target)
	}
	if info.NameLists != nil {
		st.Store.SetNameLists(rec.ID, *info.NameLists)
	}
	if !info.Site.IsNull() {
		st.Sites.Bind(info.Site, rec)
	}

	id := rec.ID
	for _, p := range info.Parents {
		st.Store.SetParent(p.Rel, id, p.Entity)
	}
	for _, c := range info.Children {
		st.Store.SetParent(c.Rel, c.Entity, id)
	}
	for _, sib := range info.Siblings {
		st.Store.MakeSibling(sib.Rel, id, sib.Entity)
	}

	event.Emit(st.Bus, event.EntitySpawned{EntityID: id, Kind: rec.Kind, Name: rec.Name})
	return id
}

// PrototypeArgs fills in the per-instance parts of a prototype spawn.
type PrototypeArgs struct {
	Tag      string
	Location ecs.EntityID
	Faction  ecs.EntityID
}

// SpawnPrototype instantiates proto. A prototype that needs a location or
// faction panics when args leave it null.
func (st *State) SpawnPrototype(a *arena.Arena, proto Prototype, args PrototypeArgs, rng *rand.Rand) ecs.EntityID {
	parents := arena.Slice[Relation](a, 2)
	if proto.HasLocation {
		if args.Location.IsNull() {
			panic(fmt.Sprintf("world: prototype %q needs a location", proto.Name))
		}
		parents = append(parents, Relation{Rel: PlaceOf, Entity: args.Location})
	}
	if proto.HasFaction {
		if args.Faction.IsNull() {
			panic(fmt.Sprintf("world: prototype %q needs a faction", proto.Name))
		}
		parents = append(parents, Relation{Rel: Faction, Entity: args.Faction})
	}
	return st.Spawn(SpawnEntity{
		Tag:     args.Tag,
		Name:    FixedName(proto.Name),
		Kind:    proto.Kind,
		Looks:   Looks{Sprite: proto.Sprite, Size: proto.Size},
		Flags:   proto.Flags,
		Parents: parents,
	}, rng)
}
