package system

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput     Phase = iota // 0: deliver last tick's events, apply request flags
	PhasePropagate              // 1: derived state (inherited colour)
	PhaseActions                // 2: recompute available actions
	PhaseInteract               // 3: selection change / action execution
	PhaseCleanup                // 4: destroy queued entities
	PhaseOutput                 // 5: view extraction
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePropagate:
		return "propagate"
	case PhaseActions:
		return "actions"
	case PhaseInteract:
		return "interact"
	case PhaseCleanup:
		return "cleanup"
	case PhaseOutput:
		return "output"
	}
	return "unknown"
}

// System is the interface every tick system implements. F is the per-tick
// frame passed to every system of a runner.
type System[F any] interface {
	Phase() Phase
	Update(frame F)
}
