package system

import (
	"github.com/chronicle-sim/chronicle/internal/core/event"
	coresys "github.com/chronicle-sim/chronicle/internal/core/system"
)

// EventDispatchSystem delivers the events emitted during the previous tick.
// Phase 0 (Input), registered first.
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *EventDispatchSystem) Update(_ *Frame) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
