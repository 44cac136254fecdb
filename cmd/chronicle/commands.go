package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/spatial"
	"github.com/chronicle-sim/chronicle/internal/view"
	"github.com/chronicle-sim/chronicle/internal/world"
)

type verb int

const (
	verbTick verb = iota
	verbEnd
	verbActive
	verbSelectEntity
	verbSelectSite
	verbSelectGlobal
	verbSelectNone
	verbAct
)

// command is one parsed line of run input.
type command struct {
	verb  verb
	tag   string
	index int
	quit  bool
	empty bool
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return command{empty: true}, nil
	}
	switch fields[0] {
	case "quit", "exit":
		return command{quit: true}, nil
	case "tick":
		return command{verb: verbTick}, nil
	case "end":
		return command{verb: verbEnd}, nil
	case "active":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("usage: active <entity-tag>")
		}
		return command{verb: verbActive, tag: fields[1]}, nil
	case "act":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("usage: act <n>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("act: %w", err)
		}
		return command{verb: verbAct, index: n}, nil
	case "select":
		switch {
		case len(fields) == 2 && fields[1] == "global":
			return command{verb: verbSelectGlobal}, nil
		case len(fields) == 2 && fields[1] == "none":
			return command{verb: verbSelectNone}, nil
		case len(fields) == 2:
			return command{verb: verbSelectEntity, tag: fields[1]}, nil
		case len(fields) == 3 && fields[1] == "site":
			return command{verb: verbSelectSite, tag: fields[2]}, nil
		}
		return command{}, fmt.Errorf("usage: select <entity-tag> | select site <site-tag> | select global | select none")
	}
	return command{}, fmt.Errorf("unknown command %q", fields[0])
}

// resolver maps content tags to handles.
type resolver interface {
	Entity(tag string) ecs.EntityID
	Site(tag string) (spatial.NodeID, bool)
}

type stateResolver struct{ st *world.State }

func (r stateResolver) Entity(tag string) ecs.EntityID { return r.st.Store.Lookup(tag) }

func (r stateResolver) Site(tag string) (spatial.NodeID, bool) { return r.st.Sites.Lookup(tag) }

func (c command) request(r resolver) (view.Request, error) {
	var req view.Request
	target := func(id view.ObjectID) *view.ObjectID { return &id }

	switch c.verb {
	case verbEnd:
		req.EndTurn = true
	case verbActive:
		id := r.Entity(c.tag)
		if id.IsNull() {
			return req, fmt.Errorf("unknown entity %q", c.tag)
		}
		req.MakeActive = target(view.EntityID(id))
	case verbSelectEntity:
		id := r.Entity(c.tag)
		if id.IsNull() {
			return req, fmt.Errorf("unknown entity %q", c.tag)
		}
		req.InteractedWith = target(view.EntityID(id))
	case verbSelectSite:
		id, ok := r.Site(c.tag)
		if !ok {
			return req, fmt.Errorf("unknown site %q", c.tag)
		}
		req.InteractedWith = target(view.SiteID(id))
	case verbSelectGlobal:
		req.InteractedWith = target(view.GlobalID())
	case verbSelectNone:
		req.InteractedWith = target(view.NullID())
	case verbAct:
		req.InteractedWith = target(view.ActionID(c.index))
	}
	return req, nil
}
