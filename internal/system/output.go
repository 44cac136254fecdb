package system

import (
	coresys "github.com/chronicle-sim/chronicle/internal/core/system"
	"github.com/chronicle-sim/chronicle/internal/view"
	"github.com/chronicle-sim/chronicle/internal/world"
)

// OutputSystem extracts the snapshot when the request asks for one.
// Phase 5 (Output).
type OutputSystem struct {
	state *world.State
}

func NewOutputSystem(state *world.State) *OutputSystem {
	return &OutputSystem{state: state}
}

func (s *OutputSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *OutputSystem) Update(f *Frame) {
	if !f.Request.View.Enabled {
		f.Snapshot = view.Snapshot{}
		return
	}
	f.Snapshot = Extract(s.state, f.Arena, f.Request.View.Viewport)
}
