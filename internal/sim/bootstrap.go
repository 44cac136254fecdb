package sim

import (
	"math/rand/v2"

	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/data"
	"github.com/chronicle-sim/chronicle/internal/spatial"
	"github.com/chronicle-sim/chronicle/internal/world"
	"go.uber.org/zap"
)

// builder populates a fresh world from a scenario. Definitions that refer to
// unknown tags are logged and dropped; construction always completes.
type builder struct {
	st      *world.State
	a       *arena.Arena
	sc      *data.Scenario
	rng     *rand.Rand
	log     *zap.Logger
	skipped int
}

type populate struct {
	location ecs.EntityID
	count    int
}

// Bootstrap builds the starting world described by sc and returns the number
// of skipped definitions.
func Bootstrap(st *world.State, a *arena.Arena, sc *data.Scenario, log *zap.Logger) int {
	b := &builder{st: st, a: a, sc: sc, rng: world.BootstrapRNG(st.Seed), log: log}
	b.cultures()
	b.prototypes()
	b.sites()
	b.factions()
	people := b.locations()
	b.people(people)
	b.cards()

	log.Info("world built",
		zap.Int("entities", st.Store.Len()),
		zap.Int("sites", st.Sites.Graph().Len()),
		zap.Int("edges", st.Sites.Graph().Edges()),
		zap.Int("skipped", b.skipped))
	return b.skipped
}

func (b *builder) skip(msg string, fields ...zap.Field) {
	b.skipped++
	b.log.Warn(msg, fields...)
}

func (b *builder) cultures() {
	for _, def := range b.sc.Cultures {
		lists := world.NameLists{}.With(world.PersonalNames, def.PersonalNames)
		b.st.Spawn(world.SpawnEntity{
			Tag:       def.Tag,
			Name:      world.FixedName(def.Name),
			Kind:      "Culture",
			NameLists: &lists,
		}, b.rng)
	}
}

func (b *builder) prototypes() {
next:
	for _, def := range b.sc.Prototypes {
		var flags world.Flags
		for _, name := range def.Flags {
			f, ok := world.ParseFlag(name)
			if !ok {
				b.skip("unknown flag in prototype", zap.String("prototype", def.Tag), zap.String("flag", name))
				continue next
			}
			flags.Set(f, true)
		}
		b.st.Prototypes.Define(def.Tag, world.Prototype{
			Name:        def.Name,
			Kind:        def.Kind,
			Sprite:      def.Sprite,
			Size:        def.Size,
			Flags:       flags,
			HasLocation: def.HasLocation,
			HasFaction:  def.HasFaction,
		})
	}
}

func (b *builder) sites() {
	for _, def := range b.sc.Sites {
		b.st.Sites.Define(def.Tag, spatial.Vec(def.X, def.Y))
	}
	for _, pair := range b.sc.Connections {
		if err := b.st.Sites.Connect(pair[0], pair[1]); err != nil {
			b.skip("connection skipped", zap.Error(err))
		}
	}
}

// lookup resolves an entity tag, logging when it is unknown.
func (b *builder) lookup(kind, tag string) (ecs.EntityID, bool) {
	id := b.st.Store.Lookup(tag)
	if id.IsNull() {
		b.skip("unknown "+kind, zap.String("tag", tag))
		return ecs.Null, false
	}
	return id, true
}

func (b *builder) factions() {
	for _, def := range b.sc.Factions {
		parent := ecs.Null
		if def.Parent != "" {
			var ok bool
			if parent, ok = b.lookup("faction", def.Parent); !ok {
				continue
			}
		}
		color := world.RandomColor(b.rng)
		if def.Color != nil {
			color = world.RGB{R: def.Color.R, G: def.Color.G, B: def.Color.B}
		}
		b.st.Spawn(world.SpawnEntity{
			Tag:     def.Tag,
			Name:    world.FixedName(def.Name),
			Kind:    "Faction",
			Looks:   world.Looks{Color: world.FixedColor(color)},
			Flags:   world.FlagSet(world.IsFaction),
			Parents: []world.Relation{{Rel: world.Faction, Entity: parent}},
		}, b.rng)
	}
}

func (b *builder) locations() []populate {
	out := make([]populate, 0, len(b.sc.Locations))
	for _, def := range b.sc.Locations {
		faction, ok := b.lookup("faction", def.Faction)
		if !ok {
			continue
		}
		culture, ok := b.lookup("culture", def.Culture)
		if !ok {
			continue
		}
		site, ok := b.st.Sites.Lookup(def.Site)
		if !ok {
			b.skip("unknown site", zap.String("tag", def.Site))
			continue
		}
		if holder := b.st.Sites.BoundEntity(site); !holder.IsNull() {
			b.skip("site already occupied", zap.String("tag", def.Site))
			continue
		}
		kind, ok := b.sc.LocationKind(def.Kind)
		if !ok {
			b.skip("unknown location kind", zap.String("location", def.Site), zap.String("kind", def.Kind))
			continue
		}

		children := arena.Slice[world.Relation](b.a, 1)
		if def.Capital {
			children = append(children, world.Relation{Rel: world.Capital, Entity: faction})
		}
		loc := b.st.Spawn(world.SpawnEntity{
			Tag:      def.Site,
			Name:     world.FixedName(def.Name),
			Kind:     kind.Label,
			Looks:    world.Looks{Sprite: kind.Sprite, Size: kind.Size, Color: world.DynamicColor()},
			Site:     site,
			Flags:    world.FlagSet(world.IsLocation, world.IsPlace),
			Refs:     []world.RefArg{{Link: world.Culture, Target: culture}},
			Parents:  []world.Relation{{Rel: world.Faction, Entity: faction}},
			Children: children,
		}, b.rng)

		count := kind.People
		if n, ok := b.sc.PopulationOf(def.Site); ok {
			count = n
		}
		out = append(out, populate{location: loc, count: count})
	}
	return out
}

func (b *builder) people(sources []populate) {
	for _, src := range sources {
		loc := b.st.Store.Get(src.location)
		culture := loc.Refs.Get(world.Culture)
		for i := 0; i < src.count; i++ {
			b.st.Spawn(world.SpawnEntity{
				Name:     world.NameFrom(culture, world.PersonalNames),
				Kind:     "Person",
				Looks:    world.Looks{Color: world.DynamicColor()},
				Flags:    world.FlagSet(world.IsPerson),
				Refs:     []world.RefArg{{Link: world.Culture, Target: culture}},
				Parents:  []world.Relation{{Rel: world.PlaceOf, Entity: loc.ID}},
				Siblings: []world.Relation{{Rel: world.Faction, Entity: loc.ID}},
			}, b.rng)
		}
	}
}

func (b *builder) cards() {
	for _, def := range b.sc.Cards {
		loc, ok := b.lookup("location", def.Location)
		if !ok {
			continue
		}
		proto, ok := b.st.Prototypes.Lookup(def.Prototype)
		if !ok {
			b.skip("undefined prototype", zap.String("prototype", def.Prototype))
			continue
		}
		args := world.PrototypeArgs{Location: loc, Faction: b.st.Store.Parent(world.Faction, loc)}
		if proto.HasFaction && args.Faction.IsNull() {
			b.skip("card needs a faction", zap.String("prototype", def.Prototype), zap.String("location", def.Location))
			continue
		}
		b.st.SpawnPrototype(b.a, proto, args, b.rng)
	}
}
