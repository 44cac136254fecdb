package world

import (
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/core/event"
	"github.com/chronicle-sim/chronicle/internal/view"
	"go.uber.org/zap"
)

// State is the whole mutable world passed through every tick system.
// Accessed only from the simulation goroutine; no locks needed.
type State struct {
	Store      *Store
	Sites      *Sites
	Prototypes *Prototypes
	Bus        *event.Bus

	Seed uint64
	Turn int

	// ActiveAgent is the entity the player acts as.
	ActiveAgent ecs.EntityID
	// Selected is the object last interacted with: null, a site or an entity.
	Selected view.ObjectID
	// Actions available to ActiveAgent against the selected entity.
	Actions []Action
	// RecruitPrototype is spawned by the Recruit action.
	RecruitPrototype string

	log *zap.Logger
}

// DefaultRecruitPrototype is the prototype tag spawned by Recruit unless
// configured otherwise.
const DefaultRecruitPrototype = "bonheddwr"

// NewState returns an empty world at turn 1.
func NewState(seed uint64, cellSize float64, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	st := &State{
		Store:      NewStore(),
		Sites:      NewSites(cellSize),
		Prototypes: NewPrototypes(),
		Bus:        event.NewBus(),
		Seed:       seed,
		Turn:       1,
		log:        log,

		RecruitPrototype: DefaultRecruitPrototype,
	}
	st.Store.Register(st.Sites)
	st.Store.Register(despawnNotifier{st})
	return st
}

func (st *State) Log() *zap.Logger { return st.log }

// SelectedEntity returns the selected entity, or ecs.Null when the selection
// is not a live entity.
func (st *State) SelectedEntity() ecs.EntityID {
	id, ok := st.Selected.AsEntity()
	if !ok || !st.Store.Alive(id) {
		return ecs.Null
	}
	return id
}

// Despawn removes id immediately.
func (st *State) Despawn(id ecs.EntityID) bool {
	return st.Store.Despawn(id)
}

// despawnNotifier announces despawns on the bus. It runs inside the removal
// registry, so the record is still readable.
type despawnNotifier struct{ st *State }

func (d despawnNotifier) Remove(id ecs.EntityID) {
	event.Emit(d.st.Bus, event.EntityDespawned{
		EntityID: id,
		Name:     d.st.Store.Get(id).Name,
	})
}
