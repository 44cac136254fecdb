package system

import (
	"github.com/chronicle-sim/chronicle/internal/core/event"
	coresys "github.com/chronicle-sim/chronicle/internal/core/system"
	"github.com/chronicle-sim/chronicle/internal/world"
	"go.uber.org/zap"
)

// TurnSystem applies the end-turn and make-active flags of the request.
// Phase 0 (Input).
type TurnSystem struct {
	state *world.State
	log   *zap.Logger
}

func NewTurnSystem(state *world.State, log *zap.Logger) *TurnSystem {
	return &TurnSystem{state: state, log: log}
}

func (s *TurnSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *TurnSystem) Update(f *Frame) {
	st := s.state
	if f.Request.EndTurn {
		st.Turn++
		event.Emit(st.Bus, event.TurnAdvanced{Turn: st.Turn})
	}

	if f.Request.MakeActive == nil {
		return
	}
	id, ok := f.Request.MakeActive.AsEntity()
	if !ok || !st.Store.Alive(id) {
		s.log.Debug("make-active target is not a live entity",
			zap.Stringer("target", *f.Request.MakeActive))
		return
	}
	if st.ActiveAgent != id {
		st.ActiveAgent = id
		event.Emit(st.Bus, event.ActiveAgentChanged{EntityID: id})
	}
}
