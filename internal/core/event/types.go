package event

import "github.com/chronicle-sim/chronicle/internal/core/ecs"

// World events. Emitted during a tick, observed at the start of the next one.

type TurnAdvanced struct {
	Turn int
}

type EntitySpawned struct {
	EntityID ecs.EntityID
	Kind     string
	Name     string
}

type EntityDespawned struct {
	EntityID ecs.EntityID
	Name     string
}

type ActiveAgentChanged struct {
	EntityID ecs.EntityID
}

type ActionPerformed struct {
	Action  string
	Subject ecs.EntityID
	Target  ecs.EntityID
}
