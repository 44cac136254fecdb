// Package view holds the boundary types exchanged with a presentation layer:
// the per-tick Request, the Snapshot it produces, and the Object tree inside
// it. Nothing here refers back to live world state.
package view

import (
	"fmt"

	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/spatial"
)

// HandleKind discriminates the ObjectID union.
type HandleKind uint8

const (
	HandleNull HandleKind = iota
	HandleGlobal
	HandleSite
	HandleEntity
	HandleAction
)

func (k HandleKind) String() string {
	switch k {
	case HandleNull:
		return "null"
	case HandleGlobal:
		return "global"
	case HandleSite:
		return "site"
	case HandleEntity:
		return "entity"
	case HandleAction:
		return "action"
	}
	return "unknown"
}

// ObjectID routes a clicked or referenced object back to the subsystem that
// owns it. The zero value is the null handle.
type ObjectID struct {
	Kind   HandleKind
	Site   spatial.NodeID
	Entity ecs.EntityID
	Action int
}

func NullID() ObjectID   { return ObjectID{} }
func GlobalID() ObjectID { return ObjectID{Kind: HandleGlobal} }

func SiteID(id spatial.NodeID) ObjectID {
	if id.IsNull() {
		return NullID()
	}
	return ObjectID{Kind: HandleSite, Site: id}
}

func EntityID(id ecs.EntityID) ObjectID {
	if id.IsNull() {
		return NullID()
	}
	return ObjectID{Kind: HandleEntity, Entity: id}
}

// ActionID names the i-th entry of the root object's actions list.
func ActionID(i int) ObjectID { return ObjectID{Kind: HandleAction, Action: i} }

func (id ObjectID) IsNull() bool { return id.Kind == HandleNull }

// AsEntity returns the entity handle, or ecs.Null for other variants.
func (id ObjectID) AsEntity() (ecs.EntityID, bool) {
	if id.Kind != HandleEntity {
		return ecs.Null, false
	}
	return id.Entity, true
}

// AsSite returns the site handle, or spatial.NullNode for other variants.
func (id ObjectID) AsSite() (spatial.NodeID, bool) {
	if id.Kind != HandleSite {
		return spatial.NullNode, false
	}
	return id.Site, true
}

func (id ObjectID) String() string {
	switch id.Kind {
	case HandleSite:
		return fmt.Sprintf("site:%d", id.Site)
	case HandleEntity:
		return "entity:" + id.Entity.String()
	case HandleAction:
		return fmt.Sprintf("action:%d", id.Action)
	}
	return id.Kind.String()
}
