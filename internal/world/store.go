package world

import (
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
	"github.com/chronicle-sim/chronicle/internal/core/tags"
)

// Store owns every entity record. Handles are generational: a despawned
// handle never resolves again, even after its slot is reused.
// Accessed only from the simulation goroutine; no locks.
type Store struct {
	ecs       *ecs.World
	records   []*Record // by handle index; slot 0 is the null record
	tags      *tags.Registry[ecs.EntityID]
	nameLists *ecs.PtrComponentStore[NameLists]
}

func NewStore() *Store {
	s := &Store{
		ecs:       ecs.NewWorld(),
		records:   make([]*Record, 1, 256),
		tags:      tags.New[ecs.EntityID](),
		nameLists: ecs.NewPtrComponentStore[NameLists](),
	}
	s.records[0] = &Record{Name: "NULL", Kind: UnknownKind}

	// Despawn order: sever hierarchies first so no live record keeps a
	// reference, then drop sidecar data and the tag.
	reg := s.ecs.Registry()
	reg.Register(severHierarchies{s})
	reg.Register(s.nameLists)
	reg.Register(s.tags)
	return s
}

// Register adds a store that must forget an entity when it is despawned.
// Removables run in registration order while the entity is still alive.
func (s *Store) Register(r ecs.Removable) {
	s.ecs.Registry().Register(r)
}

// Spawn creates a record with a fresh handle. A non-empty tag is bound to
// it, moving the tag off any previous holder.
func (s *Store) Spawn(tag string) *Record {
	id := s.ecs.CreateEntity()
	rec := &Record{ID: id, Kind: UnknownKind}
	idx := int(id.Index())
	for len(s.records) <= idx {
		s.records = append(s.records, nil)
	}
	s.records[idx] = rec
	if tag != "" {
		s.tags.Insert(tag, id)
	}
	return rec
}

// Despawn severs every hierarchy link of id, drops its sidecar data and tag,
// and frees the slot. Returns false for the null handle or a stale one.
func (s *Store) Despawn(id ecs.EntityID) bool {
	return s.ecs.Destroy(id)
}

// MarkForDespawn queues id for FlushDespawns.
func (s *Store) MarkForDespawn(id ecs.EntityID) {
	s.ecs.MarkForDestruction(id)
}

// PendingDespawns returns the number of queued despawns.
func (s *Store) PendingDespawns() int { return s.ecs.Pending() }

// FlushDespawns despawns every queued entity and returns how many were live.
func (s *Store) FlushDespawns() int {
	return s.ecs.FlushDestroyQueue()
}

func (s *Store) Alive(id ecs.EntityID) bool { return s.ecs.Alive(id) }

// Len returns the number of live entities.
func (s *Store) Len() int { return s.ecs.Pool().Live() }

// Lookup resolves tag to a handle, or ecs.Null.
func (s *Store) Lookup(tag string) ecs.EntityID {
	id, _ := s.tags.Lookup(tag)
	return id
}

// TagOf returns the tag bound to id, or "".
func (s *Store) TagOf(id ecs.EntityID) string {
	tag, _ := s.tags.ReverseLookup(id)
	return tag
}

// Get returns the record for id, or the shared null record when id is null
// or stale. The null record must not be modified.
func (s *Store) Get(id ecs.EntityID) *Record {
	if rec, ok := s.GetMut(id); ok {
		return rec
	}
	return s.records[0]
}

// GetMut returns the record for a live id.
func (s *Store) GetMut(id ecs.EntityID) (*Record, bool) {
	if !s.ecs.Alive(id) {
		return nil, false
	}
	return s.records[id.Index()], true
}

// Null returns the null record.
func (s *Store) Null() *Record { return s.records[0] }

// Each calls fn for every live record in slot order.
func (s *Store) Each(fn func(*Record)) {
	for i := 1; i < len(s.records); i++ {
		rec := s.records[i]
		if rec != nil && s.ecs.Alive(rec.ID) {
			fn(rec)
		}
	}
}

// SetNameLists attaches word lists to a live entity.
func (s *Store) SetNameLists(id ecs.EntityID, lists NameLists) {
	if !s.ecs.Alive(id) {
		return
	}
	s.nameLists.Set(id, &lists)
}

// NameListsOf returns the word lists attached to id, or nil.
func (s *Store) NameListsOf(id ecs.EntityID) *NameLists {
	lists, _ := s.nameLists.Get(id)
	return lists
}
