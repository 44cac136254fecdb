package system

import (
	"sort"
)

// Runner executes systems in phase order each tick. Systems sharing a phase
// run in registration order.
type Runner[F any] struct {
	systems []System[F]
	sorted  bool
}

func NewRunner[F any]() *Runner[F] {
	return &Runner[F]{
		systems: make([]System[F], 0, 8),
	}
}

func (r *Runner[F]) Register(s System[F]) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

func (r *Runner[F]) Tick(frame F) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(frame)
	}
}

// TickPhase runs only the systems registered for the given phase.
func (r *Runner[F]) TickPhase(phase Phase, frame F) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(frame)
		}
	}
}

// Len returns the number of registered systems.
func (r *Runner[F]) Len() int { return len(r.systems) }

func (r *Runner[F]) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
