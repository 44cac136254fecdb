package system

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/spatial"
	"github.com/chronicle-sim/chronicle/internal/view"
	"github.com/chronicle-sim/chronicle/internal/world"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	layerSites    uint8 = 0
	layerEntities uint8 = 1
)

const siteItemSize = 1.0

var (
	titleCaser = cases.Title(language.English)
	tagToWords = strings.NewReplacer("_", " ", "-", " ")
)

// Extract builds a snapshot of st bounded by viewport. The result shares no
// memory with st or with a.
func Extract(st *world.State, a *arena.Arena, viewport spatial.Extents) view.Snapshot {
	return view.Snapshot{
		MapItems: mapItems(st, a, viewport),
		MapEdges: mapEdges(st.Sites.Graph(), viewport),
		Root:     rootObject(st),
		Selected: selectedObject(st, a),
	}
}

// mapItems lists unbound sites on the background layer and site-bound
// entities above them, in site order within each layer.
func mapItems(st *world.State, a *arena.Arena, viewport spatial.Extents) []view.MapItem {
	graph := st.Sites.Graph()
	visible := arena.Slice[spatial.NodeID](a, graph.Len())
	st.Sites.Grid().Query(viewport, func(id spatial.NodeID) {
		if viewport.Contains(graph.Pos(id)) {
			visible = append(visible, id)
		}
	})

	items := make([]view.MapItem, 0, len(visible))
	for _, site := range visible {
		pos := graph.Pos(site)
		bound := st.Sites.BoundEntity(site)
		if bound.IsNull() {
			items = append(items, view.MapItem{
				ID:    view.SiteID(site),
				Pos:   pos,
				Size:  siteItemSize,
				Layer: layerSites,
			})
			continue
		}
		rec := st.Store.Get(bound)
		items = append(items, view.MapItem{
			ID:     view.EntityID(rec.ID),
			Name:   rec.Name,
			Color:  toViewRGB(rec.Color.Current),
			Sprite: rec.Sprite,
			Pos:    pos,
			Size:   rec.Size,
			Layer:  layerEntities,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Layer < items[j].Layer })
	return items
}

// mapEdges lists each edge once when at least one endpoint is visible.
func mapEdges(graph *spatial.Graph, viewport spatial.Extents) []view.Edge {
	var edges []view.Edge
	graph.Each(func(n *spatial.Node) {
		fromIn := viewport.Contains(n.Pos)
		graph.GreaterNeighbours(n.ID, func(nb spatial.Neighbour) {
			to := graph.Pos(nb.ID)
			if fromIn || viewport.Contains(to) {
				edges = append(edges, view.Edge{From: n.Pos, To: to})
			}
		})
	})
	return edges
}

func rootObject(st *world.State) view.Object {
	actions := make([]view.Object, len(st.Actions))
	for i, act := range st.Actions {
		actions[i] = view.NewBuilder().
			ID("id", view.ActionID(i)).
			Text("name", act.Name).
			Build()
	}
	return view.NewBuilder().
		ID("id", view.GlobalID()).
		Text("turn_number", strconv.Itoa(st.Turn)).
		Child("active_agent", entityRef(st.Store, st.ActiveAgent)).
		List("actions", actions).
		Build()
}

func selectedObject(st *world.State, a *arena.Arena) view.Object {
	sel := st.Selected
	switch sel.Kind {
	case view.HandleGlobal:
		return view.NewBuilder().
			ID("id", sel).
			Text("turn_number", strconv.Itoa(st.Turn)).
			Build()
	case view.HandleSite:
		return siteObject(st, sel.Site)
	case view.HandleEntity:
		if !st.Store.Alive(sel.Entity) {
			return view.Object{}
		}
		return entityObject(st, a, sel.Entity)
	}
	return view.Object{}
}

// SiteName turns a site tag such as "caer_ligualid-din_drust" into a display
// name.
func SiteName(tag string) string {
	if tag == "" {
		return "Site"
	}
	return titleCaser.String(tagToWords.Replace(tag))
}

func siteObject(st *world.State, site spatial.NodeID) view.Object {
	return view.NewBuilder().
		ID("id", view.SiteID(site)).
		Text("name", SiteName(st.Sites.TagOf(site))).
		Text("kind", "Site").
		Child("occupant", entityRef(st.Store, st.Sites.BoundEntity(site))).
		Build()
}

func entityObject(st *world.State, a *arena.Arena, id ecs.EntityID) view.Object {
	store := st.Store
	rec := store.Get(id)
	b := view.NewBuilder().
		ID("id", view.EntityID(id)).
		Text("name", rec.Name).
		Text("kind", rec.Kind).
		Child("faction", entityRef(store, rec.Parent(world.Faction))).
		Child("root", entityRef(store, store.RootOf(world.Faction, id))).
		Flag("can_make_active_agent", rec.Flags.Has(world.IsPerson))

	ancestry := store.Ancestry(a, world.Faction, id)
	b.List("ancestry", entityRefs(store, ancestry))

	if culture := rec.Refs.Get(world.Culture); store.Alive(culture) {
		b.Child("culture", entityRef(store, culture))
	}
	if rec.Flags.Has(world.IsPlace) {
		b.List("people_here", recordRefs(store.ChildrenWithFlags(a, world.PlaceOf, id, world.FlagSet(world.IsPerson))))
		b.List("cards_here", recordRefs(store.ChildrenWithFlags(a, world.PlaceOf, id, world.FlagSet(world.IsCard))))
	}
	if rec.Flags.Has(world.IsFaction) {
		b.List("members", entityRefs(store, rec.Children(world.Faction)))
		b.Child("capital", entityRef(store, rec.Parent(world.Capital)))
	}
	if rec.Flags.Has(world.IsLocation) {
		b.Child("capital_of", entityRef(store, store.SingularChild(world.Capital, id)))
	}
	return b.Build()
}

// entityRef is the minimal form used wherever one entity refers to another.
// A null or dead reference becomes the empty object.
func entityRef(store *world.Store, id ecs.EntityID) view.Object {
	if !store.Alive(id) {
		return view.Object{}
	}
	return view.NewBuilder().
		ID("id", view.EntityID(id)).
		Text("name", store.Get(id).Name).
		Build()
}

func entityRefs(store *world.Store, ids []ecs.EntityID) []view.Object {
	out := make([]view.Object, 0, len(ids))
	for _, id := range ids {
		out = append(out, entityRef(store, id))
	}
	return out
}

func recordRefs(recs []*world.Record) []view.Object {
	out := make([]view.Object, 0, len(recs))
	for _, rec := range recs {
		out = append(out, view.NewBuilder().
			ID("id", view.EntityID(rec.ID)).
			Text("name", rec.Name).
			Build())
	}
	return out
}

func toViewRGB(c world.RGB) view.RGB {
	return view.RGB{R: c.R, G: c.G, B: c.B}
}
