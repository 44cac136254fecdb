package system

import (
	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/view"
)

// Frame is the per-tick context handed to every system: the request being
// applied, the scratch arena for this tick, and the snapshot being produced.
type Frame struct {
	Request  view.Request
	Arena    *arena.Arena
	Snapshot view.Snapshot
}
