package system

import (
	coresys "github.com/chronicle-sim/chronicle/internal/core/system"
	"github.com/chronicle-sim/chronicle/internal/view"
	"github.com/chronicle-sim/chronicle/internal/world"
	"go.uber.org/zap"
)

// InteractionSystem applies the request's interaction: it changes the
// selection or performs one of the available actions. Phase 3 (Interact).
type InteractionSystem struct {
	state *world.State
	log   *zap.Logger
}

func NewInteractionSystem(state *world.State, log *zap.Logger) *InteractionSystem {
	return &InteractionSystem{state: state, log: log}
}

func (s *InteractionSystem) Phase() coresys.Phase { return coresys.PhaseInteract }

func (s *InteractionSystem) Update(f *Frame) {
	if f.Request.InteractedWith == nil {
		return
	}
	st := s.state
	target := *f.Request.InteractedWith

	switch target.Kind {
	case view.HandleNull, view.HandleGlobal:
		st.Selected = target
	case view.HandleEntity:
		if !st.Store.Alive(target.Entity) {
			s.log.Debug("interaction with despawned entity", zap.Stringer("target", target))
			return
		}
		st.Selected = target
	case view.HandleSite:
		if _, ok := st.Sites.Graph().Node(target.Site); !ok {
			s.log.Debug("interaction with unknown site", zap.Stringer("target", target))
			return
		}
		st.Selected = target
	case view.HandleAction:
		if target.Action < 0 || target.Action >= len(st.Actions) {
			s.log.Warn("action index out of range",
				zap.Int("index", target.Action),
				zap.Int("available", len(st.Actions)))
			return
		}
		act := st.Actions[target.Action]
		s.log.Info("performing action",
			zap.String("action", act.Name),
			zap.Stringer("subject", act.Subject),
			zap.Stringer("target", act.Target))
		if err := st.Perform(f.Arena, act, st.RNG()); err != nil {
			s.log.Warn("action skipped", zap.String("action", act.Name), zap.Error(err))
			return
		}
	default:
		return
	}
	st.RefreshActions()
}
