package world

import (
	"fmt"
	"sort"

	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/core/ecs"
)

// severHierarchies detaches a despawning entity from every relation, both as
// parent and as child.
type severHierarchies struct{ s *Store }

func (h severHierarchies) Remove(id ecs.EntityID) {
	for _, rel := range Hierarchies() {
		h.s.RemoveAllChildren(rel, id)
		h.s.Unparent(rel, id)
	}
}

// Parent returns e's parent under rel, or ecs.Null.
func (s *Store) Parent(rel HierarchyName, e ecs.EntityID) ecs.EntityID {
	return s.Get(e).Parent(rel)
}

// Children returns e's children under rel in handle order. Callers must not
// modify the slice.
func (s *Store) Children(rel HierarchyName, e ecs.EntityID) []ecs.EntityID {
	return s.Get(e).Children(rel)
}

// SingularChild returns the only child of e under rel, or ecs.Null. More than
// one child is an invariant violation.
func (s *Store) SingularChild(rel HierarchyName, e ecs.EntityID) ecs.EntityID {
	children := s.Children(rel, e)
	switch len(children) {
	case 0:
		return ecs.Null
	case 1:
		return children[0]
	}
	panic(fmt.Sprintf("world: %s has %d %s children, want at most one", e, len(children), rel))
}

// ChildrenWithFlags returns the children of e under rel that carry every flag
// in mask. The slice is carved from a and dies with it.
func (s *Store) ChildrenWithFlags(a *arena.Arena, rel HierarchyName, e ecs.EntityID, mask Flags) []*Record {
	children := s.Children(rel, e)
	out := arena.Slice[*Record](a, len(children))
	for _, c := range children {
		if rec := s.Get(c); rec.Flags.HasAll(mask) {
			out = append(out, rec)
		}
	}
	return out
}

// SetParent moves child under parent in rel. A null parent detaches child; a
// parent equal to child marks child as a root. Null or stale children are
// ignored. Parenting to a dead entity or to a descendant of child panics.
func (s *Store) SetParent(rel HierarchyName, child, parent ecs.EntityID) {
	c, ok := s.GetMut(child)
	if !ok {
		return
	}
	linked := !parent.IsNull() && parent != child
	if linked {
		if !s.Alive(parent) {
			panic(fmt.Sprintf("world: set %s parent of %s to dead entity %s", rel, child, parent))
		}
		if s.descends(rel, parent, child) {
			panic(fmt.Sprintf("world: set %s parent of %s to its descendant %s", rel, child, parent))
		}
	}

	s.Unparent(rel, child)
	c.Links[rel].Parent = parent
	if !linked {
		return
	}
	p := s.records[parent.Index()]
	p.Links[rel].Children = sortedInsert(p.Links[rel].Children, child)
}

// SetRoot marks e as the root of its own tree under rel.
func (s *Store) SetRoot(rel HierarchyName, e ecs.EntityID) {
	s.SetParent(rel, e, e)
}

// MakeSibling gives child the same parent as sibling under rel.
func (s *Store) MakeSibling(rel HierarchyName, child, sibling ecs.EntityID) {
	parent := s.Parent(rel, sibling)
	if parent == sibling {
		// sibling is a root; child becomes a root of its own
		parent = child
	}
	s.SetParent(rel, child, parent)
}

// Unparent detaches child from its parent under rel.
func (s *Store) Unparent(rel HierarchyName, child ecs.EntityID) {
	c, ok := s.GetMut(child)
	if !ok {
		return
	}
	parent := c.Links[rel].Parent
	if parent.IsNull() {
		return
	}
	c.Links[rel].Parent = ecs.Null
	if parent == child {
		return
	}
	p, ok := s.GetMut(parent)
	if !ok {
		panic(fmt.Sprintf("world: %s parent of %s is dead entity %s", rel, child, parent))
	}
	p.Links[rel].Children = sortedRemove(p.Links[rel].Children, child)
}

// RemoveAllChildren detaches every child of parent under rel.
func (s *Store) RemoveAllChildren(rel HierarchyName, parent ecs.EntityID) {
	p, ok := s.GetMut(parent)
	if !ok {
		return
	}
	children := p.Links[rel].Children
	p.Links[rel].Children = nil
	for _, id := range children {
		c, ok := s.GetMut(id)
		if !ok || c.Links[rel].Parent != parent {
			panic(fmt.Sprintf("world: %s child %s of %s is not linked back", rel, id, parent))
		}
		c.Links[rel].Parent = ecs.Null
	}
}

// RootOf follows parents under rel from e to the first entity that has no
// parent or is its own parent. A dead e has root ecs.Null.
func (s *Store) RootOf(rel HierarchyName, e ecs.EntityID) ecs.EntityID {
	if !s.Alive(e) {
		return ecs.Null
	}
	limit := s.Len() + 1
	cur := e
	for step := 0; step <= limit; step++ {
		parent := s.Get(cur).Parent(rel)
		if parent.IsNull() || parent == cur {
			return cur
		}
		cur = parent
	}
	panic(fmt.Sprintf("world: %s hierarchy above %s does not terminate", rel, e))
}

// Ancestry returns the chain from e up to its root under rel, both inclusive.
// The slice is carved from a and dies with it.
func (s *Store) Ancestry(a *arena.Arena, rel HierarchyName, e ecs.EntityID) []ecs.EntityID {
	out := arena.Slice[ecs.EntityID](a, 8)
	if !s.Alive(e) {
		return out
	}
	limit := s.Len() + 1
	for cur := e; len(out) <= limit; {
		out = append(out, cur)
		parent := s.Get(cur).Parent(rel)
		if parent.IsNull() || parent == cur {
			return out
		}
		cur = parent
	}
	panic(fmt.Sprintf("world: %s hierarchy above %s does not terminate", rel, e))
}

// descends reports whether e is ancestor or lies below it under rel.
func (s *Store) descends(rel HierarchyName, e, ancestor ecs.EntityID) bool {
	limit := s.Len() + 1
	cur := e
	for step := 0; step <= limit; step++ {
		if cur == ancestor {
			return true
		}
		parent := s.Get(cur).Parent(rel)
		if parent.IsNull() || parent == cur {
			return false
		}
		cur = parent
	}
	panic(fmt.Sprintf("world: %s hierarchy above %s does not terminate", rel, e))
}

func sortedInsert(ids []ecs.EntityID, id ecs.EntityID) []ecs.EntityID {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, ecs.Null)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

func sortedRemove(ids []ecs.EntityID, id ecs.EntityID) []ecs.EntityID {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if i < len(ids) && ids[i] == id {
		return append(ids[:i], ids[i+1:]...)
	}
	return ids
}
