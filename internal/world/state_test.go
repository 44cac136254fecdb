package world

import (
	"testing"

	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/core/event"
	"github.com/chronicle-sim/chronicle/internal/spatial"
	"github.com/chronicle-sim/chronicle/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestState(t *testing.T) *State {
	return NewState(42, spatial.DefaultCellSize, zaptest.NewLogger(t))
}

func TestSites_DefineConnectAndBind(t *testing.T) {
	st := newTestState(t)
	s1 := st.Sites.Define("s1", spatial.Vec(0, 0))
	s2 := st.Sites.Define("s2", spatial.Vec(3, 4))
	require.NoError(t, st.Sites.Connect("s1", "s2"))
	assert.Equal(t, 5.0, st.Sites.Graph().Distance(s1, s2))
	assert.Error(t, st.Sites.Connect("s1", "nowhere"))

	rec := st.Store.Spawn("town")
	st.Sites.Bind(s1, rec)
	assert.Equal(t, s1, rec.Site)
	assert.Equal(t, rec.ID, st.Sites.BoundEntity(s1))

	other := st.Store.Spawn("")
	assert.Panics(t, func() { st.Sites.Bind(s1, other) }, "site already bound")
	assert.Panics(t, func() { st.Sites.Bind(s2, rec) }, "entity already bound")

	st.Despawn(rec.ID)
	assert.True(t, st.Sites.BoundEntity(s1).IsNull())
	st.Sites.Bind(s1, other)
}

func TestSites_Route(t *testing.T) {
	st := newTestState(t)
	st.Sites.Define("a", spatial.Vec(0, 0))
	st.Sites.Define("b", spatial.Vec(3, 4))
	st.Sites.Define("c", spatial.Vec(6, 8))
	require.NoError(t, st.Sites.Connect("a", "b"))
	require.NoError(t, st.Sites.Connect("b", "c"))

	path, cost, err := st.Sites.Route("a", "c")
	require.NoError(t, err)
	assert.Len(t, path, 3)
	assert.InDelta(t, 10.0, cost, 1e-9)

	st.Sites.Define("island", spatial.Vec(50, 50))
	_, _, err = st.Sites.Route("a", "island")
	assert.Error(t, err)
	_, _, err = st.Sites.Route("a", "nowhere")
	assert.Error(t, err)
}

func TestSpawn_AssignsEverythingAtOnce(t *testing.T) {
	st := newTestState(t)
	site := st.Sites.Define("caer", spatial.Vec(0, 0))
	culture := st.Spawn(SpawnEntity{
		Tag:       "brythonic",
		Name:      FixedName("Brythonic"),
		NameLists: &NameLists{PersonalNames: {"Urien"}},
	}, st.RNG())
	faction := st.Spawn(SpawnEntity{
		Tag:   "rheged",
		Name:  FixedName("Rheged"),
		Kind:  "Faction",
		Looks: Looks{Color: FixedColor(RGB{200, 40, 30})},
		Flags: FlagSet(IsFaction),
	}, st.RNG())
	town := st.Spawn(SpawnEntity{
		Tag:     "caer_ligualid",
		Name:    FixedName("Caer Ligualid"),
		Kind:    "Town",
		Looks:   Looks{Sprite: "town", Size: 2, Color: DynamicColor()},
		Site:    site,
		Flags:   FlagSet(IsLocation, IsPlace),
		Refs:    []RefArg{{Link: Culture, Target: culture}},
		Parents: []Relation{{Rel: Faction, Entity: faction}},
	}, st.RNG())
	person := st.Spawn(SpawnEntity{
		Name:     NameFrom(culture, PersonalNames),
		Kind:     "Person",
		Flags:    FlagSet(IsPerson),
		Parents:  []Relation{{Rel: PlaceOf, Entity: town}},
		Siblings: []Relation{{Rel: Faction, Entity: town}},
	}, st.RNG())

	rec := st.Store.Get(town)
	assert.Equal(t, "Town", rec.Kind)
	assert.True(t, rec.Color.Dirty)
	assert.True(t, rec.Flags.HasAll(FlagSet(IsLocation, IsPlace)))
	assert.False(t, rec.Flags.Has(IsPerson))
	assert.Equal(t, culture, rec.Refs.Get(Culture))
	assert.Equal(t, site, rec.Site)
	assert.Equal(t, faction, st.Store.Parent(Faction, town))
	assert.Equal(t, "Urien", st.Store.Get(person).Name)
	assert.Equal(t, faction, st.Store.Parent(Faction, person))
	assert.Equal(t, []ecs.EntityID{town, person}, st.Store.Children(Faction, faction))
	assert.Equal(t, UnknownKind, st.Store.Get(culture).Kind)

	assert.Equal(t, 4, st.Bus.Pending())
}

func TestNameLists_EmptyPicksNoName(t *testing.T) {
	st := newTestState(t)
	var missing *NameLists
	assert.Equal(t, NoName, missing.PickRandomly(PersonalNames, st.RNG()))
	id := st.Spawn(SpawnEntity{Name: NameFrom(ecs.NewEntityID(9, 9), PersonalNames)}, st.RNG())
	assert.Equal(t, NoName, st.Store.Get(id).Name)
}

func TestRNG_DeterministicPerTurn(t *testing.T) {
	a := NewState(7, 0, nil)
	b := NewState(7, 0, nil)
	assert.Equal(t, a.RNG().Uint64(), b.RNG().Uint64())

	first := a.RNG().Uint64()
	a.Turn++
	assert.NotEqual(t, first, a.RNG().Uint64())
	assert.NotEqual(t, TurnSeed(7, 1), TurnSeed(8, 1))
}

func setupActionWorld(t *testing.T) (st *State, agent, town, card ecs.EntityID) {
	st = newTestState(t)
	faction := st.Spawn(SpawnEntity{Tag: "rheged", Flags: FlagSet(IsFaction)}, st.RNG())
	town = st.Spawn(SpawnEntity{
		Tag:     "caer",
		Flags:   FlagSet(IsLocation, IsPlace),
		Parents: []Relation{{Rel: Faction, Entity: faction}},
	}, st.RNG())
	agent = st.Spawn(SpawnEntity{
		Name:    FixedName("Urien"),
		Flags:   FlagSet(IsPerson),
		Parents: []Relation{{Rel: PlaceOf, Entity: town}},
	}, st.RNG())
	card = st.Spawn(SpawnEntity{
		Name:    FixedName("Bonheddwr"),
		Flags:   FlagSet(IsCard),
		Parents: []Relation{{Rel: PlaceOf, Entity: town}},
	}, st.RNG())
	st.RecruitPrototype = "bonheddwr"
	st.Prototypes.Define("bonheddwr", Prototype{
		Name: "Bonheddwr", Kind: "Card", Flags: FlagSet(IsCard), HasLocation: true,
	})
	return st, agent, town, card
}

func names(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Name
	}
	return out
}

func TestActions_DependOnTarget(t *testing.T) {
	st, agent, town, card := setupActionWorld(t)

	assert.Empty(t, st.AvailableActions(), "no agent, no selection")

	st.ActiveAgent = agent
	assert.Empty(t, st.AvailableActions(), "no selection")

	st.Selected = view.EntityID(agent)
	assert.Equal(t, []string{"Observe", "Greet"}, names(st.AvailableActions()))
	st.Selected = view.EntityID(town)
	assert.Equal(t, []string{"Observe", "Recruit"}, names(st.AvailableActions()))
	st.Selected = view.EntityID(card)
	assert.Equal(t, []string{"Observe", "Dismiss"}, names(st.AvailableActions()))
	st.Selected = view.SiteID(1)
	assert.Empty(t, st.AvailableActions())
}

func TestActions_RecruitSpawnsAtLocation(t *testing.T) {
	st, agent, town, _ := setupActionWorld(t)
	st.ActiveAgent = agent
	st.Selected = view.EntityID(town)
	actions := st.AvailableActions()
	require.Len(t, actions, 2)

	before := len(st.Store.Children(PlaceOf, town))
	require.NoError(t, st.Perform(arena.New(), actions[1], st.RNG()))
	assert.Len(t, st.Store.Children(PlaceOf, town), before+1)

	actions[1].Prototype = "missing"
	assert.ErrorIs(t, st.Perform(arena.New(), actions[1], st.RNG()), ErrUnknownPrototype)
}

func TestActions_DismissIsDeferred(t *testing.T) {
	st, agent, town, card := setupActionWorld(t)
	st.ActiveAgent = agent
	st.Selected = view.EntityID(card)
	actions := st.AvailableActions()

	require.NoError(t, st.Perform(arena.New(), actions[1], st.RNG()))
	assert.True(t, st.Store.Alive(card))
	st.Store.FlushDespawns()
	assert.False(t, st.Store.Alive(card))
	assert.NotContains(t, st.Store.Children(PlaceOf, town), card)
	assert.ErrorIs(t, st.Perform(arena.New(), actions[1], st.RNG()), ErrStaleAction)
}

func TestState_DespawnIsAnnounced(t *testing.T) {
	st := newTestState(t)
	id := st.Spawn(SpawnEntity{Name: FixedName("Owain")}, st.RNG())

	var got []event.EntityDespawned
	event.Subscribe(st.Bus, func(ev event.EntityDespawned) { got = append(got, ev) })
	st.Despawn(id)
	st.Bus.SwapBuffers()
	st.Bus.DispatchAll()

	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].EntityID)
	assert.Equal(t, "Owain", got[0].Name)
}
