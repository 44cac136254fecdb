package system

import (
	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	coresys "github.com/chronicle-sim/chronicle/internal/core/system"
	"github.com/chronicle-sim/chronicle/internal/world"
)

// ColorSystem re-derives dirty colours from the Faction parent.
// Phase 1 (Propagate).
type ColorSystem struct {
	state *world.State
	// maxPasses bounds the passes per tick; 0 runs until nothing changes.
	maxPasses int
}

func NewColorSystem(state *world.State, maxPasses int) *ColorSystem {
	if maxPasses < 0 {
		maxPasses = 0
	}
	return &ColorSystem{state: state, maxPasses: maxPasses}
}

func (s *ColorSystem) Phase() coresys.Phase { return coresys.PhasePropagate }

func (s *ColorSystem) Update(f *Frame) {
	limit := s.maxPasses
	if limit == 0 {
		// A chain can be at most Len deep, so this always converges first.
		limit = s.state.Store.Len() + 1
	}
	for pass := 0; pass < limit; pass++ {
		if PropagateColors(s.state.Store, f.Arena) == 0 {
			return
		}
	}
}

type colorUpdate struct {
	id    ecs.EntityID
	color world.EntityColor
}

// PropagateColors runs one pass: every dirty entity takes the colour and
// dirty flag its Faction parent had at the start of the pass. An entity
// without a parent inherits from the null record and comes out clean.
// Returns the number of entities whose colour state changed.
func PropagateColors(store *world.Store, a *arena.Arena) int {
	updates := arena.Slice[colorUpdate](a, store.Len())
	store.Each(func(rec *world.Record) {
		if !rec.Color.Dirty {
			return
		}
		src := store.Get(rec.Parent(world.Faction))
		if src.Color != rec.Color {
			updates = append(updates, colorUpdate{id: rec.ID, color: src.Color})
		}
	})
	for _, u := range updates {
		if rec, ok := store.GetMut(u.id); ok {
			rec.Color = u.color
		}
	}
	return len(updates)
}
