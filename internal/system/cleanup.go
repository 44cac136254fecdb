package system

import (
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	coresys "github.com/chronicle-sim/chronicle/internal/core/system"
	"github.com/chronicle-sim/chronicle/internal/view"
	"github.com/chronicle-sim/chronicle/internal/world"
	"go.uber.org/zap"
)

// CleanupSystem flushes the deferred despawn queue at tick end and drops
// references to anything it removed. Phase 4 (Cleanup).
type CleanupSystem struct {
	state *world.State
	log   *zap.Logger
}

func NewCleanupSystem(state *world.State, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{state: state, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ *Frame) {
	st := s.state
	if n := st.Store.FlushDespawns(); n > 0 {
		s.log.Debug("flushed despawns", zap.Int("count", n))
	}

	stale := false
	if !st.ActiveAgent.IsNull() && !st.Store.Alive(st.ActiveAgent) {
		st.ActiveAgent = ecs.Null
		stale = true
	}
	if id, ok := st.Selected.AsEntity(); ok && !st.Store.Alive(id) {
		st.Selected = view.NullID()
		stale = true
	}
	if stale {
		st.RefreshActions()
	}
}
