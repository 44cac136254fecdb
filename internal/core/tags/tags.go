// Package tags binds stable, human-readable names to opaque handles.
package tags

// Registry is a bijection between string tags and handles. Each tag names at
// most one handle and each handle carries at most one tag. Binding a tag that is
// already in use silently moves it to the new handle ("latest definition wins").
type Registry[T comparable] struct {
	byTag map[string]T
	byID  map[T]string
}

func New[T comparable]() *Registry[T] {
	return &Registry[T]{
		byTag: make(map[string]T),
		byID:  make(map[T]string),
	}
}

// Insert binds tag to id, unbinding whatever held the tag before and whatever
// tag id held before.
func (r *Registry[T]) Insert(tag string, id T) {
	r.Unbind(tag)
	r.Remove(id)
	r.byTag[tag] = id
	r.byID[id] = tag
}

// Unbind drops tag, if bound.
func (r *Registry[T]) Unbind(tag string) {
	if id, ok := r.byTag[tag]; ok {
		delete(r.byTag, tag)
		delete(r.byID, id)
	}
}

// Remove drops the tag carried by id, if any.
func (r *Registry[T]) Remove(id T) {
	if tag, ok := r.byID[id]; ok {
		delete(r.byID, id)
		delete(r.byTag, tag)
	}
}

func (r *Registry[T]) Lookup(tag string) (T, bool) {
	id, ok := r.byTag[tag]
	return id, ok
}

func (r *Registry[T]) ReverseLookup(id T) (string, bool) {
	tag, ok := r.byID[id]
	return tag, ok
}

func (r *Registry[T]) Len() int { return len(r.byTag) }
