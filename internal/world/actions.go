package world

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/core/event"
)

// ActionKind identifies what performing an action does.
type ActionKind uint8

const (
	ActionObserve ActionKind = iota
	ActionGreet
	ActionRecruit
	ActionDismiss
)

// Action is one entry of the context menu offered to the active agent.
type Action struct {
	Name      string
	Kind      ActionKind
	Subject   ecs.EntityID
	Target    ecs.EntityID
	Prototype string // spawned by ActionRecruit
}

var (
	ErrUnknownPrototype = errors.New("unknown prototype")
	ErrStaleAction      = errors.New("action refers to a despawned entity")
)

// AvailableActions lists what the active agent can do to the selected entity.
// Nothing is offered unless both are live.
func (st *State) AvailableActions() []Action {
	subject := st.ActiveAgent
	target := st.SelectedEntity()
	if !st.Store.Alive(subject) || target.IsNull() {
		return nil
	}
	rec := st.Store.Get(target)
	base := Action{Subject: subject, Target: target}

	out := make([]Action, 0, 4)
	observe := base
	observe.Name, observe.Kind = "Observe", ActionObserve
	out = append(out, observe)
	if rec.Flags.Has(IsPerson) {
		greet := base
		greet.Name, greet.Kind = "Greet", ActionGreet
		out = append(out, greet)
	}
	if rec.Flags.Has(IsLocation) {
		recruit := base
		recruit.Name, recruit.Kind, recruit.Prototype = "Recruit", ActionRecruit, st.RecruitPrototype
		out = append(out, recruit)
	}
	if rec.Flags.Has(IsCard) {
		dismiss := base
		dismiss.Name, dismiss.Kind = "Dismiss", ActionDismiss
		out = append(out, dismiss)
	}
	return out
}

// RefreshActions replaces the cached action list.
func (st *State) RefreshActions() {
	st.Actions = st.AvailableActions()
}

// Perform executes act. Dismissal is deferred to the cleanup phase.
func (st *State) Perform(a *arena.Arena, act Action, rng *rand.Rand) error {
	if !st.Store.Alive(act.Subject) || !st.Store.Alive(act.Target) {
		return ErrStaleAction
	}
	switch act.Kind {
	case ActionRecruit:
		proto, ok := st.Prototypes.Lookup(act.Prototype)
		if !ok {
			return fmt.Errorf("recruit %q: %w", act.Prototype, ErrUnknownPrototype)
		}
		args := PrototypeArgs{
			Location: act.Target,
			Faction:  st.Store.Parent(Faction, act.Target),
		}
		if proto.HasFaction && args.Faction.IsNull() {
			return fmt.Errorf("recruit %q at %s: location has no faction", act.Prototype, act.Target)
		}
		st.SpawnPrototype(a, proto, args, rng)
	case ActionDismiss:
		st.Store.MarkForDespawn(act.Target)
	}
	event.Emit(st.Bus, event.ActionPerformed{Action: act.Name, Subject: act.Subject, Target: act.Target})
	return nil
}
