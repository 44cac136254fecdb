package system

import (
	coresys "github.com/chronicle-sim/chronicle/internal/core/system"
	"github.com/chronicle-sim/chronicle/internal/world"
)

// ActionSystem recomputes the actions the active agent can take against the
// current selection. Phase 2 (Actions).
type ActionSystem struct {
	state *world.State
}

func NewActionSystem(state *world.State) *ActionSystem {
	return &ActionSystem{state: state}
}

func (s *ActionSystem) Phase() coresys.Phase { return coresys.PhaseActions }

func (s *ActionSystem) Update(_ *Frame) {
	s.state.RefreshActions()
}
