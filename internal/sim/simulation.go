// Package sim wires the world state and the tick systems into a Simulation
// that a front end drives one request at a time.
package sim

import (
	"github.com/chronicle-sim/chronicle/internal/config"
	"github.com/chronicle-sim/chronicle/internal/core/arena"
	coresys "github.com/chronicle-sim/chronicle/internal/core/system"
	"github.com/chronicle-sim/chronicle/internal/data"
	"github.com/chronicle-sim/chronicle/internal/spatial"
	"github.com/chronicle-sim/chronicle/internal/system"
	"github.com/chronicle-sim/chronicle/internal/view"
	"github.com/chronicle-sim/chronicle/internal/world"
	"go.uber.org/zap"
)

// Options tune a Simulation.
type Options struct {
	// Seed overrides the scenario seed when non-zero.
	Seed             uint64
	MaxColorPasses   int
	RecruitPrototype string
	GridCellSize     float64
}

// OptionsFrom maps the [world] and [simulation] config sections.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Seed:             cfg.World.Seed,
		MaxColorPasses:   cfg.Simulation.MaxColorPasses,
		RecruitPrototype: cfg.Simulation.RecruitPrototype,
		GridCellSize:     cfg.Simulation.GridCellSize,
	}
}

// Simulation owns one world and advances it one request at a time.
// Not safe for concurrent use.
type Simulation struct {
	state   *world.State
	runner  *coresys.Runner[*system.Frame]
	log     *zap.Logger
	skipped int
}

// New builds the world from sc and runs one empty tick so derived state is
// settled before the first request.
func New(sc *data.Scenario, opts Options, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	seed := sc.Seed
	if opts.Seed != 0 {
		seed = opts.Seed
	}
	cell := opts.GridCellSize
	if cell <= 0 {
		cell = spatial.DefaultCellSize
	}

	st := world.NewState(seed, cell, log)
	if opts.RecruitPrototype != "" {
		st.RecruitPrototype = opts.RecruitPrototype
	}

	r := coresys.NewRunner[*system.Frame]()
	r.Register(system.NewEventDispatchSystem(st.Bus))
	r.Register(system.NewTurnSystem(st, log))
	r.Register(system.NewColorSystem(st, opts.MaxColorPasses))
	r.Register(system.NewActionSystem(st))
	r.Register(system.NewInteractionSystem(st, log))
	r.Register(system.NewCleanupSystem(st, log))
	r.Register(system.NewOutputSystem(st))

	subscribeEventLog(st.Bus, log)

	s := &Simulation{state: st, runner: r, log: log}
	a := arena.New()
	s.skipped = Bootstrap(st, a, sc, log)
	a.Reset()
	s.Tick(view.Request{}, a)
	return s
}

// Tick applies req and returns the snapshot it asked for. The caller resets a
// before each call; the snapshot does not reference it.
func (s *Simulation) Tick(req view.Request, a *arena.Arena) view.Snapshot {
	f := &system.Frame{Request: req, Arena: a}
	s.runner.Tick(f)
	return f.Snapshot
}

// State exposes the live world for read-only inspection.
func (s *Simulation) State() *world.State { return s.state }

// Skipped returns how many scenario definitions were dropped while building.
func (s *Simulation) Skipped() int { return s.skipped }

// Route finds the shortest path between two tagged sites and returns the
// tags along it.
func (s *Simulation) Route(from, to string) ([]string, float64, error) {
	path, cost, err := s.state.Sites.Route(from, to)
	if err != nil {
		return nil, 0, err
	}
	tags := make([]string, len(path))
	for i, id := range path {
		tags[i] = s.state.Sites.TagOf(id)
	}
	return tags, cost, nil
}
